package repositories

import (
	"context"
	"fmt"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const columns = `id, booking_number, type, item_id, customer_name, customer_email, customer_phone,
	start_date, total_travelers, total_amount, special_requests, status, created_at, updated_at`

type repositories struct {
	db  database.Client
	log *otelzap.Logger
}

type Repositories interface {
	FindAll(ctx context.Context, filter entity.Filter) ([]entity.Booking, error)
	Count(ctx context.Context, filter entity.Filter) (int64, error)
	// FindByID and FindByBookingNumber return nil when nothing matches.
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByBookingNumber(ctx context.Context, number string) (*entity.Booking, error)
	// FindItem resolves the active tour or service a booking refers to.
	FindItem(ctx context.Context, itemType, id string) (*entity.Item, error)
	Save(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id, status, updatedAt string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (entity.Stats, error)
}

func New(db database.Client, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

func where(filter entity.Filter) *database.Where {
	w := &database.Where{}
	return w.Eq("status", filter.Status).
		Eq("type", filter.Type).
		Search(filter.Search, "booking_number", "customer_name", "customer_email")
}

func (r *repositories) find(ctx context.Context, query string, params ...interface{}) ([]entity.Booking, error) {
	res := r.db.Query(ctx, query, params...)
	if !res.Success {
		return nil, errors.InternalServerError("error find bookings")
	}

	bookings, err := database.DecodeAll[entity.Booking](res.Data)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode bookings: %v", err))
		return nil, errors.InternalServerError("error find bookings")
	}
	return bookings, nil
}

func (r *repositories) findOne(ctx context.Context, query string, params ...interface{}) (*entity.Booking, error) {
	bookings, err := r.find(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return &bookings[0], nil
}

func (r *repositories) FindAll(ctx context.Context, filter entity.Filter) ([]entity.Booking, error) {
	w := where(filter)
	query, params := database.Paginate(
		"SELECT "+columns+" FROM bookings"+w.String()+" ORDER BY created_at DESC, id",
		w.Params(), filter.Limit, filter.Offset,
	)
	return r.find(ctx, query, params...)
}

func (r *repositories) Count(ctx context.Context, filter entity.Filter) (int64, error) {
	w := where(filter)
	res := r.db.Query(ctx, "SELECT COUNT(*) AS total FROM bookings"+w.String(), w.Params()...)
	if !res.Success {
		return 0, errors.InternalServerError("error count bookings")
	}
	if len(res.Data) == 0 {
		return 0, nil
	}
	return database.Int(res.Data[0], "total"), nil
}

func (r *repositories) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM bookings WHERE id = ?", id)
}

func (r *repositories) FindByBookingNumber(ctx context.Context, number string) (*entity.Booking, error) {
	return r.findOne(ctx, "SELECT "+columns+" FROM bookings WHERE booking_number = ?", number)
}

func (r *repositories) FindItem(ctx context.Context, itemType, id string) (*entity.Item, error) {
	table := "tours"
	if itemType == entity.TypeService {
		table = "services"
	}

	res := r.db.Query(ctx, "SELECT id, title, price FROM "+table+" WHERE id = ? AND status = ?", id, "active")
	if !res.Success {
		return nil, errors.InternalServerError("error find booking item")
	}
	if len(res.Data) == 0 {
		return nil, nil
	}

	item, err := database.Decode[entity.Item](res.Data[0])
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("error decode booking item: %v", err))
		return nil, errors.InternalServerError("error find booking item")
	}
	return &item, nil
}

func (r *repositories) Save(ctx context.Context, b *entity.Booking) error {
	res := r.db.Run(ctx, `INSERT INTO bookings (`+columns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.BookingNumber, b.Type, b.ItemID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.StartDate, b.TotalTravelers, b.TotalAmount, b.SpecialRequests, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if !res.Success {
		return errors.InternalServerError("error save booking")
	}
	return nil
}

func (r *repositories) UpdateStatus(ctx context.Context, id, status, updatedAt string) error {
	res := r.db.Run(ctx, "UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?", status, updatedAt, id)
	return database.Affected(res, "booking")
}

func (r *repositories) Delete(ctx context.Context, id string) error {
	res := r.db.Run(ctx, "DELETE FROM bookings WHERE id = ?", id)
	return database.Affected(res, "booking")
}

func (r *repositories) Stats(ctx context.Context) (entity.Stats, error) {
	res := r.db.Query(ctx, `SELECT status, COUNT(*) AS count,
		CAST(SUM(total_amount) AS DOUBLE PRECISION) AS amount
		FROM bookings GROUP BY status`)
	if !res.Success {
		return entity.Stats{}, errors.InternalServerError("error get booking stats")
	}

	stats := entity.Stats{ByStatus: make(map[string]int64, len(entity.Statuses))}
	for _, s := range entity.Statuses {
		stats.ByStatus[s] = 0
	}
	for _, row := range res.Data {
		status, _ := row["status"].(string)
		count := database.Int(row, "count")

		stats.Total += count
		stats.ByStatus[status] = count
		if status == entity.StatusConfirmed || status == entity.StatusCompleted {
			stats.Revenue += database.Float(row, "amount")
		}
	}
	return stats, nil
}
