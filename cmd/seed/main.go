package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/adubrov/boiler-parts/internal/adapter/storage"
	"github.com/adubrov/boiler-parts/internal/config"
	"github.com/adubrov/boiler-parts/internal/core/domain"
)

var boilerManufacturers = []string{
	"Ariston", "Chaffoteaux&Maury", "Baxi", "Bongioanni", "Saunier Duval",
	"Buderus", "Strategist", "Henry", "Northwest",
}

var partsManufacturers = []string{
	"Azure", "Gloves", "Cambridgeshire", "Salmon", "Montana",
	"Sensor", "Lesly", "Radian", "Gasoline", "Croatia",
}

var partNames = []string{
	"Heat exchanger", "Expansion tank", "Ignition electrode", "Gas valve",
	"Circulation pump", "Pressure sensor", "Three-way valve", "Burner nozzle",
	"Control board", "Flow switch", "Safety thermostat", "Diverter membrane",
}

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "fill the catalog with generated boiler parts",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Value: 100,
				Usage: "number of parts to generate",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.Int("count"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(count int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sqlx.Connect("mysql", cfg.MySQLDSN)
	if err != nil {
		return errors.Wrap(err, "connect mysql")
	}
	defer db.Close()

	ctx := context.Background()
	repo := storage.NewMySQLPartRepository(db)

	for i := 0; i < count; i++ {
		part := randomPart()
		if err := repo.Create(ctx, &part); err != nil {
			return errors.Wrapf(err, "seed part %d", i)
		}
	}

	log.Infof("seeded %d boiler parts", count)
	return nil
}

func randomPart() domain.PartRecord {
	images := make([]string, 3)
	for i := range images {
		images[i] = fmt.Sprintf("https://loremflickr.com/640/480/technology?lock=%d", rand.Int63())
	}
	encoded, _ := json.Marshal(images)

	name := fmt.Sprintf("%s %s", partNames[rand.Intn(len(partNames))], uuid.NewString()[:8])
	now := time.Now().UTC()

	return domain.PartRecord{
		BoilerManufacturer: boilerManufacturers[rand.Intn(len(boilerManufacturers))],
		PartsManufacturer:  partsManufacturers[rand.Intn(len(partsManufacturers))],
		Price:              float64(rand.Intn(10000) + 100),
		VendorCode:         uuid.NewString(),
		Name:               name,
		Description:        fmt.Sprintf("Replacement part %s for household boilers.", name),
		Images:             string(encoded),
		InStock:            rand.Intn(20),
		Bestsellers:        rand.Intn(2) == 0,
		New:                rand.Intn(2) == 0,
		Popularity:         rand.Intn(100),
		Compatibility:      boilerManufacturers[rand.Intn(len(boilerManufacturers))],
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
