package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"pet-intake/internal/domain/pets"
	"pet-intake/internal/intake"
)

type quoteOutput struct {
	Duration  string  `json:"duration"`
	Discount  float64 `json:"discount"`
	TotalCost int64   `json:"totalCost"`
	NetCost   int64   `json:"netCost"`
}

func priceCmd() *cobra.Command {
	var duration string
	var discount float64

	c := &cobra.Command{
		Use:   "price",
		Short: "Calcula total y neto para una duración y un descuento (sin red)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(pets.Discounts(), discount) {
				return fmt.Errorf("discount must be one of %v", pets.Discounts())
			}

			code := pets.ParseDurationCode(duration)
			cost := pets.Quote(code, discount)
			return printJSON(cmd.OutOrStdout(), quoteOutput{
				Duration:  code.String(),
				Discount:  discount,
				TotalCost: cost.Total,
				NetCost:   cost.Net,
			})
		},
	}

	c.Flags().StringVar(&duration, "duration", "", "Código de duración 1..5 (vacío = sin duración)")
	c.Flags().Float64Var(&discount, "discount", 0, "Descuento en porcentaje: 0, 5, 10 o 15")
	return c
}

func validateCmd() *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Valida un registro YAML (sin red)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := loadRecord(file)
			if err != nil {
				return err
			}

			if fields := pets.Validate(rec); !fields.Empty() {
				return report(cmd.OutOrStdout(), &intake.ValidationError{Fields: fields})
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Archivo YAML del registro (requerido)")
	_ = c.MarkFlagRequired("file")
	return c
}
