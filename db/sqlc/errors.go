package db

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
)

// ErrRecordNotFound is returned when a query matches no rows.
var ErrRecordNotFound = pgx.ErrNoRows

var ErrUniqueViolation = &pgconn.PgError{
	Code: UniqueViolation,
}

// Pickup lifecycle errors. Handlers map these to the API error taxonomy.
var (
	ErrPickupNotFound  = errors.New("pickup record not found")
	ErrAlreadyPickedUp = errors.New("order already picked up")
	ErrPickupExpired   = errors.New("pickup window expired")
	ErrOtpExpired      = errors.New("otp expired, please request a new one")
	ErrInvalidOtp      = errors.New("invalid otp code")
	ErrInvalidPickup   = errors.New("pickup code does not match")
	ErrOrderClaimLost  = errors.New("order claimed by another bundling run")
	ErrActivePickup    = errors.New("order already has an active locker pickup")
	ErrNoCompartment   = errors.New("no free compartment in locker")
)

// ErrorCode extracts the postgres error code, empty string for non-pg errors.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
