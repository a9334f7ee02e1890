package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nextgencars/backend/internal/domain/client"
	"github.com/nextgencars/backend/internal/domain/vehicle"
	"github.com/nextgencars/backend/internal/domain/workorder"
	"github.com/nextgencars/backend/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type seedFile struct {
	Clients []seedClient `yaml:"clients"`
}

type seedClient struct {
	Type        string        `yaml:"type"`
	FirstName   *string       `yaml:"first_name"`
	LastName    *string       `yaml:"last_name"`
	CompanyName *string       `yaml:"company_name"`
	Email       *string       `yaml:"email"`
	Phone       *string       `yaml:"phone"`
	City        *string       `yaml:"city"`
	Vehicles    []seedVehicle `yaml:"vehicles"`
}

type seedVehicle struct {
	Make         string          `yaml:"make"`
	Model        string          `yaml:"model"`
	Year         *int            `yaml:"year"`
	LicensePlate string          `yaml:"license_plate"`
	VIN          *string         `yaml:"vin"`
	Km           *int            `yaml:"km"`
	WorkOrders   []seedWorkOrder `yaml:"work_orders"`
}

type seedWorkOrder struct {
	Title         string   `yaml:"title"`
	Description   *string  `yaml:"description"`
	Status        *string  `yaml:"status"`
	Priority      *string  `yaml:"priority"`
	EstimatedCost *float64 `yaml:"estimated_cost"`
	TotalCost     *float64 `yaml:"total_cost"`
}

type seedResult struct {
	Clients, Vehicles, WorkOrders int
}

var seedPath string

var seedCmd = &cobra.Command{
	Use:     "seed",
	Short:   "Load clients, vehicles and work orders from YAML",
	Example: "  nextgenctl seed --file scripts/seed.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedPath)
		if err != nil {
			return err
		}
		defer f.Close()

		seed, err := loadSeed(f)
		if err != nil {
			return err
		}
		repos, err := connect()
		if err != nil {
			return err
		}
		res, err := applySeed(cmd.Context(), repos, seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d clients, %d vehicles, %d work orders\n", res.Clients, res.Vehicles, res.WorkOrders)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedPath, "file", "f", "", "Seed file")
	_ = seedCmd.MarkFlagRequired("file")
}

func loadSeed(r io.Reader) (*seedFile, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// applySeed writes everything in one transaction; a single invalid record
// leaves the database untouched.
func applySeed(ctx context.Context, repos *repository.Repos, seed *seedFile) (seedResult, error) {
	var res seedResult
	err := repos.ExecTx(func(tx *repository.Repos) error {
		res = seedResult{}
		for i, sc := range seed.Clients {
			c, err := client.CreateClientInput{
				Type:        sc.Type,
				FirstName:   sc.FirstName,
				LastName:    sc.LastName,
				CompanyName: sc.CompanyName,
				Email:       sc.Email,
				Phone:       sc.Phone,
				City:        sc.City,
			}.Build()
			if err != nil {
				return fmt.Errorf("client #%d: %w", i+1, err)
			}
			if err := tx.Client.CreateClient(ctx, c); err != nil {
				return fmt.Errorf("client #%d: %w", i+1, err)
			}
			res.Clients++

			for _, sv := range sc.Vehicles {
				v, err := vehicle.CreateVehicleInput{
					ClientID:     c.ClientID,
					Make:         sv.Make,
					Model:        sv.Model,
					Year:         sv.Year,
					LicensePlate: sv.LicensePlate,
					VIN:          sv.VIN,
					Km:           sv.Km,
				}.Build()
				if err != nil {
					return fmt.Errorf("vehicle %q: %w", sv.LicensePlate, err)
				}
				if err := tx.Vehicle.CreateVehicle(ctx, v); err != nil {
					return fmt.Errorf("vehicle %q: %w", sv.LicensePlate, err)
				}
				res.Vehicles++

				for _, sw := range sv.WorkOrders {
					wo, err := workorder.CreateWorkOrderInput{
						Title:         sw.Title,
						Description:   sw.Description,
						Status:        sw.Status,
						Priority:      sw.Priority,
						EstimatedCost: sw.EstimatedCost,
						TotalCost:     sw.TotalCost,
						ClientID:      c.ClientID,
						VehicleID:     v.VehicleID,
					}.Build()
					if err != nil {
						return fmt.Errorf("work order %q: %w", sw.Title, err)
					}
					if err := tx.WorkOrder.CreateWorkOrder(ctx, wo); err != nil {
						return fmt.Errorf("work order %q: %w", sw.Title, err)
					}
					res.WorkOrders++
				}
			}
		}
		return nil
	})
	if err != nil {
		return seedResult{}, err
	}
	zap.L().Info("seed applied", zap.Int("clients", res.Clients), zap.Int("vehicles", res.Vehicles), zap.Int("work_orders", res.WorkOrders))
	return res, nil
}
