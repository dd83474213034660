package repository

import (
	"jiperaha/config"
	"jiperaha/database"
	slotRepo "jiperaha/database/repository/slot"
	"jiperaha/utils"
)

// Re-export the SlotRepository interface and constructors.
type SlotRepository = slotRepo.SlotRepository

var (
	NewMemorySlotRepo = slotRepo.NewMemorySlotRepo
	NewRedisSlotRepo  = slotRepo.NewRedisSlotRepo
	NewMongoSlotRepo  = slotRepo.NewMongoSlotRepo
)

// NewSlotRepoFromConfig connects the backend selected by STORAGE_DRIVER.
func NewSlotRepoFromConfig() (SlotRepository, error) {
	switch config.AppConfig.StorageDriver {
	case "", slotRepo.DriverMemory:
		return slotRepo.NewMemorySlotRepo(), nil
	case slotRepo.DriverRedis:
		if err := utils.InitCache(); err != nil {
			return nil, err
		}
		return slotRepo.NewRedisSlotRepo(utils.CacheClient), nil
	case slotRepo.DriverMongo:
		if err := database.InitDB(); err != nil {
			return nil, err
		}
		return slotRepo.NewMongoSlotRepo(database.MongoClient, config.AppConfig.DatabaseName), nil
	default:
		return nil, slotRepo.UnknownDriverError{Driver: config.AppConfig.StorageDriver}
	}
}
