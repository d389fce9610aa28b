package main

import (
	"log"
	"smarthome-server/confs"
	"smarthome-server/db"
	"smarthome-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to the relational store (SQLite file by default, Postgres when configured)
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	srv := server.NewServer(database)
	srv.Start()
}
