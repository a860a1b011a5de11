package repository

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rafisyahdn/go-dubbing-backend/internal/model"
)

// UserStore keeps the dubbing-team members synced from task-service
// assignee data.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(cfg *DBConfig) (*UserStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, err
	}
	return &UserStore{DB: db}, nil
}

// UpsertFromSync creates the user on first sight and refreshes the mutable
// profile fields on later syncs. Empty incoming fields never blank out
// existing data.
func (s *UserStore) UpsertFromSync(u *model.User) error {
	existing := model.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		AvatarURL:  u.AvatarURL,
		Experience: u.Experience,
	}
	if err := s.DB.Where("id = ?", u.ID).FirstOrCreate(&existing).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if u.Name != "" && u.Name != existing.Name {
		updates["name"] = u.Name
	}
	if u.Email != "" && u.Email != existing.Email {
		updates["email"] = u.Email
	}
	if u.AvatarURL != "" && u.AvatarURL != existing.AvatarURL {
		updates["avatar_url"] = u.AvatarURL
	}
	if u.Experience != "" && u.Experience != existing.Experience {
		updates["experience_level"] = u.Experience
	}
	if len(updates) == 0 {
		return nil
	}
	return s.DB.Model(&model.User{}).Where("id = ?", u.ID).Updates(updates).Error
}

func (s *UserStore) List() ([]model.User, error) {
	var users []model.User
	err := s.DB.Order("id").Find(&users).Error
	return users, err
}

func (s *UserStore) Get(id int64) (*model.User, error) {
	var u model.User
	if err := s.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
