// file: internals/features/claims/claim_requests/controller/claim_export_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	m "claimku_backend/internals/features/claims/claim_requests/model"
	helper "claimku_backend/internals/helpers"
)

var claimExportHeader = []string{
	"Claim ID",
	"Status",
	"Owner",
	"Policy/Car ID",
	"Accident Type",
	"Accident Date",
	"Province",
	"Admin Note",
	"Approved At",
	"Created At",
}

// Export streams the claim list as an xlsx for the back office.
// Admin-only (route group enforces the role).
func (ctl *ClaimRequestController) Export(c *fiber.Ctx) error {
	var claims []m.ClaimRequest
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("AccidentDetail").
		Order("created_at DESC").
		Limit(5000).
		Find(&claims).Error; err != nil {
		return writePGError(c, "Export", err)
	}

	buf, err := buildClaimExport(claims)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Export failed")
	}

	filename := fmt.Sprintf("claim-requests-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf)
}

func buildClaimExport(claims []m.ClaimRequest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Claim Requests"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, h := range claimExportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, claim := range claims {
		owner := ""
		if claim.UserID != nil {
			owner = claim.UserID.String()
		}
		accidentType, accidentDate, province := "", "", ""
		if claim.AccidentDetail != nil {
			accidentType = claim.AccidentDetail.AccidentType
			accidentDate = claim.AccidentDetail.AccidentDate
			province = claim.AccidentDetail.Province
		}
		adminNote := ""
		if claim.AdminNote != nil {
			adminNote = *claim.AdminNote
		}
		approvedAt := ""
		if claim.ApprovedAt != nil {
			approvedAt = claim.ApprovedAt.Format(time.RFC3339)
		}

		values := []any{
			claim.ID,
			claim.Status,
			owner,
			claim.SelectedCarID,
			accidentType,
			accidentDate,
			province,
			adminNote,
			approvedAt,
			claim.CreatedAt.Format(time.RFC3339),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var out []byte
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	out = buf.Bytes()
	return out, nil
}
