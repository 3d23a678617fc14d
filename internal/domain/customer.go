package domain

import "time"

// Customer represents a shop customer (pet owner)
type Customer struct {
	ID        int64
	Name      string
	Alias     *string
	Phone     string
	Email     *string
	Address   *string
	CreatedAt time.Time
	LastVisit *time.Time // обновляется при завершении записи клиента
}
