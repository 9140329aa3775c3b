// Package demo monta o almoxarifado de demonstração usado pelo console.
package demo

import (
	"time"

	"labstock/internal/domain"
)

// ItemCreator é qualquer componente capaz de cadastrar itens (Store ou Service).
type ItemCreator interface {
	AddItem(req domain.NewItem) domain.Item
}

type seedItem struct {
	name, category, unit, lot string
	expiryDays                int
	minStock, currentStock    int
}

var seedItems = []seedItem{
	{"Soro Fisiológico 0,9%", domain.CategoryReagent, "ml", "L123", 120, 500, 1500},
	{"Kit PCR (RT-qPCR)", domain.CategoryReagent, "un", "K776", 90, 50, 140},
	{"Hemocultivo Aeróbio", domain.CategoryReagent, "un", "H222", 60, 30, 60},
	{"Luva Nitrílica M", domain.CategoryDisposable, "cx", "LN55", 720, 40, 120},
	{"Seringa 5ml", domain.CategoryDisposable, "cx", "S5ML", 720, 35, 110},
	{"Swab Nasofaríngeo", domain.CategoryDisposable, "cx", "SW12", 540, 25, 90},
	{"Álcool 70% Isoprop.", domain.CategoryReagent, "ml", "A70I", 240, 800, 2200},
	{"Microtubo 1,5ml", domain.CategoryDisposable, "cx", "MT15", 365, 30, 100},
	{"Ponteira 200µL", domain.CategoryDisposable, "cx", "PT20", 365, 50, 160},
	{"Ponteira 1000µL", domain.CategoryDisposable, "cx", "PT10", 365, 40, 150},
}

// Seed cadastra os 10 itens de demonstração com validades relativas a today.
func Seed(creator ItemCreator, today time.Time) []domain.Item {
	today = domain.Date(today)
	items := make([]domain.Item, 0, len(seedItems))
	for _, s := range seedItems {
		items = append(items, creator.AddItem(domain.NewItem{
			Name:         s.name,
			Category:     s.category,
			Unit:         s.unit,
			Lot:          s.lot,
			Expiry:       today.AddDate(0, 0, s.expiryDays),
			MinStock:     s.minStock,
			CurrentStock: s.currentStock,
		}))
	}
	return items
}
