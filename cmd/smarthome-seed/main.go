package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_SERVER = "http://localhost:8000"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringServer step = iota
	stepEnteringName
	stepEnteringEmail
	stepEnteringPassword
	stepEnteringHouseArea
	stepCreatingUser
	stepEnteringDeviceName
	stepEnteringDeviceType
	stepCreatingDevice
	stepEnteringUsageDuration
	stepCreatingUsage
	stepComplete
)

type createdDevice struct {
	ID   uint
	Name string
}

type model struct {
	step         step
	server       string
	userName     string
	email        string
	password     string
	houseArea    float64
	userID       uint
	deviceName   string
	deviceType   string
	devices      []createdDevice
	usageCount   int
	currentInput string
	message      string
	quitting     bool
}

type userCreatedMsg struct{ id uint }
type deviceCreatedMsg struct {
	id   uint
	name string
}
type usageCreatedMsg struct{}
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	return model{
		step:    stepEnteringServer,
		devices: []createdDevice{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// createResponse matches the {"message": ..., "data": {...}} envelope the API
// returns on successful creates.
type createResponse struct {
	Data struct {
		ID uint `json:"id"`
	} `json:"data"`
}

func postJSON(url string, payload any, out *createResponse) error {
	client := &http.Client{Timeout: 10 * time.Second}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var body map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if msg, ok := body["error"].(string); ok {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func createUser(server, name, email, password string, houseArea float64) tea.Cmd {
	return func() tea.Msg {
		payload := map[string]any{
			"name":       name,
			"email":      email,
			"password":   password,
			"house_area": houseArea,
		}

		var resp createResponse
		if err := postJSON(server+"/users", payload, &resp); err != nil {
			return errMsg{err}
		}
		return userCreatedMsg{id: resp.Data.ID}
	}
}

func createDevice(server, name, deviceType string, ownerID uint) tea.Cmd {
	return func() tea.Msg {
		payload := map[string]any{
			"name":     name,
			"type":     deviceType,
			"owner_id": ownerID,
		}

		var resp createResponse
		if err := postJSON(server+"/devices", payload, &resp); err != nil {
			return errMsg{err}
		}
		return deviceCreatedMsg{id: resp.Data.ID, name: name}
	}
}

func createUsage(server string, deviceID, userID uint, duration int64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now().Add(-time.Duration(duration) * time.Second)
		payload := map[string]any{
			"device_id":   deviceID,
			"user_id":     userID,
			"usage_start": start.Format(time.RFC3339),
			"usage_end":   time.Now().Format(time.RFC3339),
			"duration":    duration,
		}

		if err := postJSON(server+"/device_usage", payload, nil); err != nil {
			return errMsg{err}
		}
		return usageCreatedMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			return m.handleEnter()

		default:
			switch m.step {
			case stepEnteringServer, stepEnteringName, stepEnteringEmail,
				stepEnteringPassword, stepEnteringHouseArea,
				stepEnteringDeviceName, stepEnteringDeviceType,
				stepEnteringUsageDuration:
				m.currentInput += msg.String()
			}
		}

	case userCreatedMsg:
		m.userID = msg.id
		m.message = fmt.Sprintf("User created with id %d", msg.id)
		m.step = stepEnteringDeviceName

	case deviceCreatedMsg:
		m.devices = append(m.devices, createdDevice{ID: msg.id, Name: msg.name})
		m.message = fmt.Sprintf("Device %q created with id %d", msg.name, msg.id)
		m.step = stepEnteringUsageDuration

	case usageCreatedMsg:
		m.usageCount++
		m.message = "Usage record stored"
		m.step = stepEnteringUsageDuration

	case errMsg:
		m.message = errorStyle.Render("Error: " + msg.Error())
		// Fall back to the input step that triggered the request
		switch m.step {
		case stepCreatingUser:
			m.step = stepEnteringName
		case stepCreatingDevice:
			m.step = stepEnteringDeviceName
		case stepCreatingUsage:
			m.step = stepEnteringUsageDuration
		}
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	input := m.currentInput
	m.currentInput = ""

	switch m.step {
	case stepEnteringServer:
		if input == "" {
			input = DEFAULT_SERVER
		}
		m.server = input
		m.step = stepEnteringName

	case stepEnteringName:
		if input != "" {
			m.userName = input
			m.step = stepEnteringEmail
		}

	case stepEnteringEmail:
		if input != "" {
			m.email = input
			m.step = stepEnteringPassword
		}

	case stepEnteringPassword:
		if input != "" {
			m.password = input
			m.step = stepEnteringHouseArea
		}

	case stepEnteringHouseArea:
		area, err := strconv.ParseFloat(input, 64)
		if err != nil || area <= 0 {
			m.message = errorStyle.Render("House area must be a positive number")
			return m, nil
		}
		m.houseArea = area
		m.step = stepCreatingUser
		m.message = "Creating user..."
		return m, createUser(m.server, m.userName, m.email, m.password, m.houseArea)

	case stepEnteringDeviceName:
		if input == "" {
			// Blank name finishes the seeding run
			m.step = stepComplete
			return m, nil
		}
		m.deviceName = input
		m.step = stepEnteringDeviceType

	case stepEnteringDeviceType:
		if input != "" {
			m.deviceType = input
			m.step = stepCreatingDevice
			m.message = "Creating device..."
			return m, createDevice(m.server, m.deviceName, m.deviceType, m.userID)
		}

	case stepEnteringUsageDuration:
		if input == "" {
			// Blank duration moves on to the next device
			m.step = stepEnteringDeviceName
			return m, nil
		}
		duration, err := strconv.ParseInt(input, 10, 64)
		if err != nil || duration < 0 {
			m.message = errorStyle.Render("Duration must be a non-negative number of seconds")
			return m, nil
		}
		last := m.devices[len(m.devices)-1]
		m.step = stepCreatingUsage
		m.message = "Recording usage..."
		return m, createUsage(m.server, last.ID, m.userID, duration)

	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("Smart Home API Seeder") + "\n"

	switch m.step {
	case stepEnteringServer:
		s += promptStyle.Render("Server URL") + fmt.Sprintf(" (enter for %s): ", DEFAULT_SERVER)
		s += inputStyle.Render(m.currentInput)

	case stepEnteringName:
		s += promptStyle.Render("User name: ") + inputStyle.Render(m.currentInput)

	case stepEnteringEmail:
		s += promptStyle.Render("Email: ") + inputStyle.Render(m.currentInput)

	case stepEnteringPassword:
		s += promptStyle.Render("Password: ") + inputStyle.Render(m.currentInput)

	case stepEnteringHouseArea:
		s += promptStyle.Render("House area (m²): ") + inputStyle.Render(m.currentInput)

	case stepCreatingUser, stepCreatingDevice, stepCreatingUsage:
		s += m.message

	case stepEnteringDeviceName:
		s += promptStyle.Render("Device name") + " (blank to finish): "
		s += inputStyle.Render(m.currentInput)

	case stepEnteringDeviceType:
		s += promptStyle.Render("Device type: ") + inputStyle.Render(m.currentInput)

	case stepEnteringUsageDuration:
		s += promptStyle.Render("Usage duration in seconds") + " (blank to skip): "
		s += inputStyle.Render(m.currentInput)

	case stepComplete:
		s += successStyle.Render("Seeding complete!") + "\n"
		s += fmt.Sprintf("User id %d, %d device(s), %d usage record(s)\n", m.userID, len(m.devices), m.usageCount)
		s += "Press enter to exit."
	}

	if m.message != "" && m.step != stepCreatingUser && m.step != stepCreatingDevice && m.step != stepCreatingUsage && m.step != stepComplete {
		s += "\n\n" + m.message
	}

	s += "\n\n(ctrl+c to quit)"
	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
