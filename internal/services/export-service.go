package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"materieelbeheer/internal/inspection"
)

type ExportServiceInterface interface {
	ExportPriorityList(ctx context.Context) (*bytes.Buffer, string, error)
}

// rankedProvider is het stukje van de lifecycle-service dat de export
// nodig heeft.
type rankedProvider interface {
	RankedMaterials(ctx context.Context) ([]inspection.RankedMaterial, error)
}

type ExportService struct {
	lifecycle rankedProvider
	logger    *zap.Logger
}

func NewExportService(lifecycle rankedProvider, logger *zap.Logger) ExportServiceInterface {
	return &ExportService{lifecycle: lifecycle, logger: logger}
}

var exportHeaders = []string{
	"Materieel", "Serienummer", "Keuringstatus", "In gebruik", "Gebruikt door",
	"Werf/locatie", "Volgende keuring", "Risicoscore", "Risiconiveau", "Toelichting",
}

// Statuslabels voor het werkblad.
var statusLabels = map[inspection.Status]string{
	inspection.StatusNoInspection: "nooit gekeurd",
	inspection.StatusValid:        "geldig",
	inspection.StatusDueSoon:      "binnenkort te keuren",
	inspection.StatusExpired:      "verlopen",
}

// ExportPriorityList schrijft de risicogesorteerde keuringslijst naar een
// xlsx-werkblad, dringendste materieel bovenaan.
func (s *ExportService) ExportPriorityList(ctx context.Context) (*bytes.Buffer, string, error) {
	ranked, err := s.lifecycle.RankedMaterials(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("xlsx-bestand sluiten mislukt", zap.Error(err))
		}
	}()

	const sheet = "Keuringsprioriteiten"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, "", err
	}
	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return nil, "", err
	}

	for i := range ranked {
		item := &ranked[i]
		row := i + 2

		inUse := "nee"
		usedBy, site := "", ""
		if item.CurrentUsage != nil {
			inUse = "ja"
			usedBy = item.CurrentUsage.UsedBy.String
			site = item.CurrentUsage.Site.String
		}

		nextDue := ""
		if item.NextDueDate != nil {
			nextDue = item.NextDueDate.Format(inspectionDateLayout)
		}

		values := []interface{}{
			item.Material.Name, item.Material.Serial.String,
			statusLabels[item.Status], inUse, usedBy, site,
			nextDue, item.RiskScore, item.RiskLevel, item.RiskExplanation,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return nil, "", err
	}
	if err := f.SetColWidth(sheet, "C", "I", 18); err != nil {
		return nil, "", err
	}
	if err := f.SetColWidth(sheet, "J", "J", 48); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx genereren mislukt: %w", err)
	}

	return buf, "keuringsprioriteiten.xlsx", nil
}
