package services

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/models"
)

// StorageData represents the JSON structure stored in the profile file
type StorageData struct {
	Profiles []models.Profile `json:"profiles"`
}

// ProfileStorage handles JSON file operations for user profiles
type ProfileStorage struct {
	filename      string
	defaultClient int64
	defaultShop   int64
	data          *StorageData
	mu            sync.RWMutex
	logger        *logrus.Logger
}

// NewProfileStorage creates a new profile storage
func NewProfileStorage(filename string, defaultClient, defaultShop int64, logger *logrus.Logger) *ProfileStorage {
	s := &ProfileStorage{
		filename:      filename,
		defaultClient: defaultClient,
		defaultShop:   defaultShop,
		data: &StorageData{
			Profiles: make([]models.Profile, 0),
		},
		logger: logger,
	}

	if err := s.Load(); err != nil {
		logger.Warnf("Failed to load profile file: %v", err)
	}

	return s
}

// Load reads data from JSON file
func (s *ProfileStorage) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filename)
	if os.IsNotExist(err) {
		s.logger.Info("Profile file does not exist, starting with empty data")
		return nil
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, s.data)
}

// Save writes data to JSON file atomically
func (s *ProfileStorage) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save()
}

// Get returns the profile of a Telegram user, filled with defaults when unknown
func (s *ProfileStorage) Get(telegramID int64) models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.data.Profiles {
		if p.TelegramID == telegramID {
			return p
		}
	}

	return models.Profile{
		TelegramID: telegramID,
		ClientID:   s.defaultClient,
		ShopID:     s.defaultShop,
	}
}

// SelectShop stores the workshop the user picked on the map
func (s *ProfileStorage) SelectShop(telegramID int64, shop models.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.data.Profiles {
		if p.TelegramID == telegramID {
			s.data.Profiles[i].ShopID = shop.ID
			s.data.Profiles[i].ShopName = shop.Name
			s.data.Profiles[i].UpdatedAt = time.Now().Unix()
			return s.save()
		}
	}

	s.data.Profiles = append(s.data.Profiles, models.Profile{
		TelegramID: telegramID,
		ClientID:   s.defaultClient,
		ShopID:     shop.ID,
		ShopName:   shop.Name,
		UpdatedAt:  time.Now().Unix(),
	})

	return s.save()
}

// Count returns the number of stored profiles
func (s *ProfileStorage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Profiles)
}

// save is an internal method that assumes the mutex is already locked
func (s *ProfileStorage) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmpFile := s.filename + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, s.filename)
}
