package handler

import (
	"github.com/TheAdijagtap/erpx/internal/application/service"
	"github.com/TheAdijagtap/erpx/internal/domain/finance"
	"github.com/TheAdijagtap/erpx/internal/presentation/http/dto/request"
)

func toTaxInput(req request.TaxRequest) service.TaxInput {
	return service.TaxInput{
		Mode:  req.Mode,
		RateA: finance.FromFloat(req.RateA),
		RateB: finance.FromFloat(req.RateB),
	}
}

func toDocumentLines(reqs []request.DocumentLineRequest) []service.DocumentLineInput {
	lines := make([]service.DocumentLineInput, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, service.DocumentLineInput{
			ItemID:      parseOptionalUUID(r.ItemID),
			ProductID:   parseOptionalUUID(r.ProductID),
			Description: r.Description,
			Quantity:    finance.FromFloat(r.Quantity),
			UnitPrice:   finance.FromFloat(r.UnitPrice),
		})
	}
	return lines
}

func toReceiptLines(reqs []request.ReceiptLineRequest) []service.ReceiptLineInput {
	lines := make([]service.ReceiptLineInput, 0, len(reqs))
	for _, r := range reqs {
		line := service.ReceiptLineInput{
			ItemID:           parseOptionalUUID(r.ItemID),
			Description:      r.Description,
			ReceivedQuantity: finance.FromFloat(r.ReceivedQuantity),
			UnitPrice:        finance.FromFloat(r.UnitPrice),
		}
		if r.OrderedQuantity != nil {
			v := finance.FromFloat(*r.OrderedQuantity)
			line.OrderedQuantity = &v
		}
		lines = append(lines, line)
	}
	return lines
}

func toCharges(reqs []request.ChargeRequest) []service.ChargeInput {
	charges := make([]service.ChargeInput, 0, len(reqs))
	for _, r := range reqs {
		charges = append(charges, service.ChargeInput{
			Name:   r.Name,
			Amount: finance.FromFloat(r.Amount),
		})
	}
	return charges
}
