package usecases

import (
	"context"
	"fmt"
	"time"

	"travel-service/internal/module/booking/models/entity"
	"travel-service/internal/module/booking/models/response"
	"travel-service/internal/pkg/errors"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportHeader = []interface{}{
	"Booking Number", "Type", "Item ID", "Customer Name", "Customer Email", "Customer Phone",
	"Start Date", "Travelers", "Total Amount", "Status", "Special Requests", "Created At",
}

// Export renders every booking matching filter as an xlsx workbook.
func (u *usecase) Export(ctx context.Context, filter entity.Filter) (response.Export, error) {
	filter.Limit, filter.Offset = 0, 0
	bookings, err := u.repo.FindAll(ctx, filter)
	if err != nil {
		return response.Export{}, err
	}

	content, err := buildWorkbook(bookings)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("error build bookings workbook: %v", err))
		return response.Export{}, errors.InternalServerError("error export bookings")
	}

	return response.Export{
		Filename: fmt.Sprintf("bookings-%s.xlsx", time.Now().UTC().Format("20060102")),
		Content:  content,
	}, nil
}

func buildWorkbook(bookings []entity.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			b.BookingNumber, b.Type, b.ItemID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
			b.StartDate, b.TotalTravelers, b.TotalAmount, b.Status, b.SpecialRequests, b.CreatedAt,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
