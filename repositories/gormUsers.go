package repositories

import (
	"smarthome-server/db"
	"smarthome-server/entities"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) Create(user *entities.User) error {
	return r.db.GetDB().Create(user).Error
}

func (r *userGormRepository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userGormRepository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userGormRepository) GetAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().Find(&users).Error
	return users, err
}

func (r *userGormRepository) GetHouseAreas() ([]entities.UserHouseArea, error) {
	var areas []entities.UserHouseArea
	err := r.db.GetDB().
		Model(&entities.User{}).
		Select("id, name, house_area").
		Scan(&areas).Error
	return areas, err
}
