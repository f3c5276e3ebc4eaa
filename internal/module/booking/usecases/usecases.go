package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/models/response"
	"travel-service/internal/module/booking/repositories"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/helpers"
	"travel-service/internal/pkg/messagestream"
	"travel-service/internal/pkg/notification"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type usecase struct {
	repo       repositories.Repositories
	publisher  message.Publisher
	mailer     notification.Mailer
	adminEmail string
	log        *otelzap.Logger
}

type Usecase interface {
	// http
	Create(ctx context.Context, payload *request.Booking) (entity.Booking, error)
	List(ctx context.Context, filter entity.Filter) ([]entity.Booking, int64, error)
	Get(ctx context.Context, id string) (entity.Booking, error)
	Lookup(ctx context.Context, number, email string) (entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, payload *request.UpdateStatus) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (response.Stats, error)
	Export(ctx context.Context, filter entity.Filter) (response.Export, error)

	// message stream
	NotifyBookingCreated(ctx context.Context, booking *entity.Booking) error
}

func New(repo repositories.Repositories, publisher message.Publisher, mailer notification.Mailer, adminEmail string, log *otelzap.Logger) Usecase {
	return &usecase{
		repo:       repo,
		publisher:  publisher,
		mailer:     mailer,
		adminEmail: adminEmail,
		log:        log,
	}
}

func (u *usecase) Create(ctx context.Context, payload *request.Booking) (entity.Booking, error) {
	item, err := u.repo.FindItem(ctx, payload.Type, payload.ItemID)
	if err != nil {
		return entity.Booking{}, err
	}
	if item == nil {
		return entity.Booking{}, errors.NotFound(fmt.Sprintf("%s not found", payload.Type))
	}

	travelers := payload.TotalTravelers
	if travelers == 0 {
		travelers = 1
	}
	amount := payload.TotalAmount
	if amount == 0 {
		amount = item.Price * float64(travelers)
	}

	now := time.Now().UTC()
	booking := entity.Booking{
		ID:              helpers.GenerateID(),
		BookingNumber:   helpers.GenerateBookingNumber(now),
		Type:            payload.Type,
		ItemID:          payload.ItemID,
		CustomerName:    payload.CustomerName,
		CustomerEmail:   strings.ToLower(payload.CustomerEmail),
		CustomerPhone:   payload.CustomerPhone,
		StartDate:       payload.StartDate,
		TotalTravelers:  travelers,
		TotalAmount:     amount,
		SpecialRequests: payload.SpecialRequests,
		Status:          entity.StatusPending,
		CreatedAt:       now.Format(time.RFC3339),
		UpdatedAt:       now.Format(time.RFC3339),
	}

	if err := u.repo.Save(ctx, &booking); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error save booking: %v", err))
		return entity.Booking{}, err
	}

	// the booking is stored either way; a lost event only skips the email
	if err := u.publish(booking); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error publish booking created: %v", err))
	}

	return booking, nil
}

func (u *usecase) publish(booking entity.Booking) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	return u.publisher.Publish(messagestream.TopicBookingCreated, message.NewMessage(watermill.NewUUID(), payload))
}

func (u *usecase) List(ctx context.Context, filter entity.Filter) ([]entity.Booking, int64, error) {
	bookings, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := u.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (u *usecase) Get(ctx context.Context, id string) (entity.Booking, error) {
	booking, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entity.Booking{}, err
	}
	if booking == nil {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	return *booking, nil
}

// Lookup finds a booking by its number for the customer who made it. A wrong
// email answers the same as an unknown number.
func (u *usecase) Lookup(ctx context.Context, number, email string) (entity.Booking, error) {
	booking, err := u.repo.FindByBookingNumber(ctx, strings.ToUpper(number))
	if err != nil {
		return entity.Booking{}, err
	}
	if booking == nil || !strings.EqualFold(booking.CustomerEmail, email) {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	return *booking, nil
}

func (u *usecase) UpdateStatus(ctx context.Context, id string, payload *request.UpdateStatus) error {
	if !entity.ValidStatus(payload.Status) {
		return errors.BadRequest(fmt.Sprintf("status must be one of %s", strings.Join(entity.Statuses, ", ")))
	}

	if err := u.repo.UpdateStatus(ctx, id, payload.Status, helpers.Now()); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error update booking status: %v", err))
		return err
	}
	return nil
}

func (u *usecase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

func (u *usecase) Stats(ctx context.Context) (response.Stats, error) {
	stats, err := u.repo.Stats(ctx)
	if err != nil {
		return response.Stats{}, err
	}
	return response.Stats(stats), nil
}

func (u *usecase) NotifyBookingCreated(ctx context.Context, booking *entity.Booking) error {
	subject := fmt.Sprintf("Booking %s received", booking.BookingNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\nWe received your %s booking %s for %d traveler(s)%s.\nTotal: %.2f\nStatus: %s\n\nOur team will contact you shortly.\n",
		booking.CustomerName, booking.Type, booking.BookingNumber, booking.TotalTravelers,
		startDate(booking.StartDate), booking.TotalAmount, booking.Status,
	)

	if err := u.mailer.Send(ctx, []string{booking.CustomerEmail}, subject, body); err != nil {
		return err
	}

	if u.adminEmail == "" {
		return nil
	}
	adminBody := fmt.Sprintf("New %s booking %s from %s <%s>, phone %s.\nItem: %s\nTotal: %.2f\nRequests: %s\n",
		booking.Type, booking.BookingNumber, booking.CustomerName, booking.CustomerEmail,
		booking.CustomerPhone, booking.ItemID, booking.TotalAmount, booking.SpecialRequests,
	)
	return u.mailer.Send(ctx, []string{u.adminEmail}, "New booking "+booking.BookingNumber, adminBody)
}

func startDate(date string) string {
	if date == "" {
		return ""
	}
	return " starting " + date
}
