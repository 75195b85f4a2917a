package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"pet-intake/internal/domain/pets"
)

func fetchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch ID",
		Short: "Trae un registro del Directory Service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			var rec pets.Pet
			if err := s.sync.Fetch(cmd.Context(), &rec, args[0]); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return printJSON(cmd.OutOrStdout(), pets.ToPayload(rec))
		},
	}
}

func saveCmd(g *globals) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "save",
		Short: "Valida y da de alta un registro YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := loadRecord(file)
			if err != nil {
				return err
			}

			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			created, err := s.sync.Save(cmd.Context(), &rec)
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return printJSON(cmd.OutOrStdout(), pets.ToPayload(created))
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Archivo YAML del registro (requerido)")
	_ = c.MarkFlagRequired("file")
	return c
}

func updateCmd(g *globals) *cobra.Command {
	var file string
	var id string

	c := &cobra.Command{
		Use:   "update",
		Short: "Valida y reemplaza un registro existente",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec, err := loadRecord(file)
			if err != nil {
				return err
			}
			if v := strings.TrimSpace(id); v != "" {
				rec.ID = v
			}

			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			if err := s.sync.Update(cmd.Context(), &rec); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return printJSON(cmd.OutOrStdout(), pets.ToPayload(rec))
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Archivo YAML del registro (requerido)")
	c.Flags().StringVar(&id, "id", "", "ID del registro; pisa el id del archivo")
	_ = c.MarkFlagRequired("file")
	return c
}

type deleteOutput struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func deleteCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Elimina un registro del Directory Service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			var rec pets.Pet
			if err := s.sync.Delete(cmd.Context(), &rec, args[0]); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			return printJSON(cmd.OutOrStdout(), deleteOutput{Message: "pet deleted", ID: strings.TrimSpace(args[0])})
		},
	}
}

func listCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista los registros del Directory Service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.open(cmd)
			if err != nil {
				return err
			}

			items, err := s.client.List(cmd.Context())
			if err != nil {
				return err
			}

			out := make([]pets.Payload, 0, len(items))
			for _, p := range items {
				out = append(out, pets.ToPayload(p))
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}
