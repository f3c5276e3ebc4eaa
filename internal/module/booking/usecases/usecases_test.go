package usecases_test

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"travel-service/internal/module/booking/mocks"
	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/models/request"
	"travel-service/internal/module/booking/usecases"
	"travel-service/internal/pkg/errors"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/messagestream"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	p        *mockPublisher
	mailer   *mockMailer
)

type mockPublisher struct {
	topics   []string
	messages []*message.Message
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.topics = append(m.topics, topic)
	m.messages = append(m.messages, messages...)
	return nil
}

type sentMail struct {
	to      []string
	subject string
}

type mockMailer struct {
	sent []sentMail
}

func (m *mockMailer) Send(_ context.Context, to []string, subject, _ string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &mockPublisher{}
	mailer = &mockMailer{}
	uc = usecases.New(repoMock, p, mailer, "ops@travel.local", log_internal.Nop())
}

func teardown() {
	repoMock = nil
	p = nil
	mailer = nil
	uc = nil
}

func TestCreate(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("amount resolved from item price", func(t *testing.T) {
		payload := &request.Booking{
			Type:           entity.TypeTour,
			ItemID:         "t1",
			CustomerName:   "Jane",
			CustomerEmail:  "Jane@Example.com",
			TotalTravelers: 3,
		}
		repoMock.On("FindItem", ctx, entity.TypeTour, "t1").Return(&entity.Item{ID: "t1", Title: "Bali", Price: 120}, nil).Once()
		repoMock.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()

		got, err := uc.Create(ctx, payload)
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^BK-\d{8}-[0-9A-Z]{6}$`), got.BookingNumber)
		assert.Equal(t, 360.0, got.TotalAmount)
		assert.Equal(t, entity.StatusPending, got.Status)
		assert.Equal(t, "jane@example.com", got.CustomerEmail)

		require.Len(t, p.messages, 1)
		assert.Equal(t, messagestream.TopicBookingCreated, p.topics[0])
		var published entity.Booking
		require.NoError(t, json.Unmarshal(p.messages[0].Payload, &published))
		assert.Equal(t, got, published)
	})

	t.Run("explicit amount and default travelers", func(t *testing.T) {
		payload := &request.Booking{
			Type:          entity.TypeService,
			ItemID:        "s1",
			CustomerName:  "Joe",
			CustomerEmail: "joe@example.com",
			TotalAmount:   75,
		}
		repoMock.On("FindItem", ctx, entity.TypeService, "s1").Return(&entity.Item{ID: "s1", Price: 10}, nil).Once()
		repoMock.On("Save", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()

		got, err := uc.Create(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, 75.0, got.TotalAmount)
		assert.Equal(t, 1, got.TotalTravelers)
	})

	t.Run("unknown item", func(t *testing.T) {
		repoMock.On("FindItem", ctx, entity.TypeTour, "missing").Return(nil, nil).Once()

		_, err := uc.Create(ctx, &request.Booking{Type: entity.TypeTour, ItemID: "missing"})
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestLookup(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	booking := &entity.Booking{ID: "b1", BookingNumber: "BK-20240501-ABC123", CustomerEmail: "jane@example.com"}
	repoMock.On("FindByBookingNumber", ctx, "BK-20240501-ABC123").Return(booking, nil)

	got, err := uc.Lookup(ctx, "bk-20240501-abc123", "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)

	_, err = uc.Lookup(ctx, "BK-20240501-ABC123", "someone@else.com")
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateStatus(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	err := uc.UpdateStatus(ctx, "b1", &request.UpdateStatus{Status: "refunded"})
	assert.Equal(t, 400, errors.StatusCode(err))
	repoMock.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	repoMock.On("UpdateStatus", ctx, "b1", entity.StatusContacted, mock.AnythingOfType("string")).Return(nil)
	assert.NoError(t, uc.UpdateStatus(ctx, "b1", &request.UpdateStatus{Status: entity.StatusContacted}))
}

func TestNotifyBookingCreated(t *testing.T) {
	setup()
	defer teardown()

	booking := &entity.Booking{BookingNumber: "BK-1", CustomerEmail: "jane@example.com", Type: entity.TypeTour}
	require.NoError(t, uc.NotifyBookingCreated(context.Background(), booking))

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, []string{"jane@example.com"}, mailer.sent[0].to)
	assert.Equal(t, "Booking BK-1 received", mailer.sent[0].subject)
	assert.Equal(t, []string{"ops@travel.local"}, mailer.sent[1].to)
}

func TestExport(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	filter := entity.Filter{Status: entity.StatusConfirmed}
	repoMock.On("FindAll", ctx, filter).Return([]entity.Booking{
		{BookingNumber: "BK-1", CustomerName: "Jane", TotalTravelers: 2, TotalAmount: 240, Status: entity.StatusConfirmed},
	}, nil)

	export, err := uc.Export(ctx, entity.Filter{Status: entity.StatusConfirmed, Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Regexp(t, `^bookings-\d{8}\.xlsx$`, export.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(export.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Booking Number", rows[0][0])
	assert.Equal(t, "BK-1", rows[1][0])
	assert.Equal(t, "Jane", rows[1][3])
	assert.Equal(t, "240", rows[1][8])
}
