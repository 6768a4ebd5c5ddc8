// Package service provides the business logic of the employee records panel:
// administrator accounts, credential checks, and employee CRUD.
package service

import (
	"github.com/MukulParasar/PRODIGY-FS-02/database"
	"github.com/MukulParasar/PRODIGY-FS-02/database/model"
	"github.com/MukulParasar/PRODIGY-FS-02/logger"
	"github.com/MukulParasar/PRODIGY-FS-02/util/crypto"
	"github.com/MukulParasar/PRODIGY-FS-02/web/schema"

	"gorm.io/gorm"
)

type UserService struct{}

// GetUser returns the user with the given id, or nil when no row matches.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail returns the user with the given email, or nil when no row
// matches.
func (s *UserService) GetUserByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new administrator with a bcrypt-hashed password. A
// duplicate email surfaces as a unique-constraint error, detectable with
// database.IsDuplicate.
func (s *UserService) CreateUser(data *schema.RegisterUser) (*model.User, error) {
	db := database.GetDB()

	hash, err := crypto.HashPasswordAsBcrypt(data.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:     data.Email,
		Password:  hash,
		FirstName: data.FirstName,
		LastName:  data.LastName,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies an email and password pair. It returns nil on any
// failure so callers cannot distinguish an unknown email from a wrong
// password.
func (s *UserService) CheckUser(email string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}

	return user
}
