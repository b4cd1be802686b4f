package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"hotelbooking/internal/repositories"
	"hotelbooking/internal/utils"
)

// RoomReleaseWorker returns rooms to the available pool once the booking
// holding them has passed its check-out date.
type RoomReleaseWorker struct {
	RoomRepo repositories.RoomRepository
	Interval time.Duration
}

func NewRoomReleaseWorker(roomRepo repositories.RoomRepository, interval time.Duration) *RoomReleaseWorker {
	return &RoomReleaseWorker{
		RoomRepo: roomRepo,
		Interval: interval,
	}
}

func (w *RoomReleaseWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	logrus.Info("Room release worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Room release worker stopped")
			return
		case <-ticker.C:
			w.releaseRooms()
		}
	}
}

func (w *RoomReleaseWorker) releaseRooms() {
	today := utils.FormatDate(time.Now())

	released, err := w.RoomRepo.ReleaseRooms(today)
	if err != nil {
		logrus.Errorf("Failed to release rooms: %v", err)
		return
	}

	if released > 0 {
		logrus.Infof("Released %d rooms past check-out", released)
	}
}
