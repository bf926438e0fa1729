package services

import (
	"hostel-backend/config"
	"hostel-backend/models"
)

type RoomService struct{}

func (s RoomService) Create(room models.Room) (models.Room, error) {
	if room.Status == "" {
		room.Status = models.DeriveRoomStatus(room.Occupancy, room.Capacity)
	}
	err := config.DB.Create(&room).Error
	return room, err
}

func (s RoomService) GetAllForOwner(ownerID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := config.DB.Where("owner_id = ?", ownerID).Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	err := config.DB.First(&room, id).Error
	return room, err
}

// Update applies caller-provided fields. Occupancy is deliberately excluded:
// the only mutation path for it is the booking accept / expiry sweep.
func (s RoomService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "occupancy")
	delete(fields, "created_at")
	return config.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields).Error
}

func (s RoomService) Delete(id uint) error {
	return config.DB.Delete(&models.Room{}, id).Error
}
