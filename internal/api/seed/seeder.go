package seed

import (
	"context"
	"time"

	"property-catalog/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeder rebuilds the catalog with a small demo data set. Intended for local
// development and demos only.
type Seeder struct {
	db *gorm.DB
}

func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Seed clears all four tables and inserts sample owners, properties, images
// and traces.
func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}

	db := s.db.WithContext(ctx)

	owners := []catalog.Owner{
		{
			Name:     "Juan Carlos Pérez González",
			Address:  "Calle 45 # 12-34, Medellín, Colombia",
			Photo:    "https://randomuser.me/api/portraits/men/1.jpg",
			Birthday: time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:     "María Isabel Rodríguez Santos",
			Address:  "Carrera 7 # 23-45, Bogotá, Colombia",
			Photo:    "https://randomuser.me/api/portraits/women/2.jpg",
			Birthday: time.Date(1990, 7, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:     "Carlos Andrés López Ramírez",
			Address:  "Avenida El Dorado # 68-12, Bogotá, Colombia",
			Photo:    "https://randomuser.me/api/portraits/men/3.jpg",
			Birthday: time.Date(1978, 11, 8, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range owners {
		if err := db.Create(&owners[i]).Error; err != nil {
			return err
		}
	}

	properties := []catalog.Property{
		{
			Name:         "Apartamento Moderno en El Poblado",
			Address:      "Carrera 43A # 5-15, El Poblado, Medellín",
			Price:        decimal.NewFromInt(450_000_000),
			CodeInternal: "PROP-001",
			Year:         2019,
			OwnerID:      owners[0].ID,
		},
		{
			Name:         "Casa Campestre en Llanogrande",
			Address:      "Vereda Llanogrande, Rionegro, Antioquia",
			Price:        decimal.NewFromInt(980_000_000),
			CodeInternal: "PROP-002",
			Year:         2015,
			OwnerID:      owners[0].ID,
		},
		{
			Name:         "Penthouse Vista al Parque",
			Address:      "Carrera 11 # 93-25, Chicó, Bogotá",
			Price:        decimal.NewFromInt(1_250_000_000),
			CodeInternal: "PROP-003",
			Year:         2021,
			OwnerID:      owners[1].ID,
		},
		{
			Name:         "Apartaestudio Centro Internacional",
			Address:      "Calle 26 # 13-19, Bogotá",
			Price:        decimal.NewFromInt(210_000_000),
			CodeInternal: "PROP-004",
			Year:         2010,
			OwnerID:      owners[2].ID,
		},
	}
	for i := range properties {
		if err := db.Create(&properties[i]).Error; err != nil {
			return err
		}
	}

	imageFiles := []string{
		"https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=1200",
		"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=1200",
		"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200",
		"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=1200",
	}
	for i := range properties {
		image := catalog.PropertyImage{
			PropertyID: properties[i].ID,
			File:       imageFiles[i],
			PublicID:   "seed/" + properties[i].CodeInternal,
			Enabled:    true,
		}
		if err := db.Create(&image).Error; err != nil {
			return err
		}
	}

	// One historical price change per property, value/tax mapped the same way
	// PUT /api/properties/:id writes them.
	for i := range properties {
		oldPrice := properties[i].Price.Mul(decimal.NewFromFloat(0.9)).Round(2)
		trace := catalog.PropertyTrace{
			PropertyID: properties[i].ID,
			DateSale:   time.Now().UTC().AddDate(0, -6, 0),
			Name:       "Price Update",
			Value:      properties[i].Price,
			Tax:        oldPrice,
		}
		if err := db.Create(&trace).Error; err != nil {
			return err
		}
	}

	return nil
}

// Clear empties all catalog tables, traces included.
func (s *Seeder) Clear(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	for _, model := range []interface{}{
		&catalog.PropertyTrace{},
		&catalog.PropertyImage{},
		&catalog.Property{},
		&catalog.Owner{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
