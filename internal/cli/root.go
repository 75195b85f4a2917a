package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pet-intake/internal/adapters/directory/petapi"
	"pet-intake/internal/intake"
	"pet-intake/internal/platform/config"
	"pet-intake/internal/platform/logger"
	"pet-intake/internal/platform/metrics"
)

// Códigos de salida por tipo de resultado.
const (
	exitFailure    = 1
	exitValidation = 2
	exitNotFound   = 3
	exitTransport  = 4
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

type globals struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:          "petctl",
		Short:        "petctl: registro de ingresos de mascotas contra el Directory Service",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML de configuración (también PETINTAKE_CONFIG)")

	cmd.AddCommand(
		priceCmd(),
		validateCmd(),
		fetchCmd(g),
		saveCmd(g),
		updateCmd(g),
		deleteCmd(g),
		listCmd(g),
	)
	return cmd
}

// session arma synchronizer y cliente desde la configuración.
type session struct {
	sync   *intake.Synchronizer
	client *petapi.Client
}

func (g *globals) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}

	opts := cfg.LoggerOptions()
	opts.Output = cmd.ErrOrStderr()
	log := logger.New(opts)

	client, err := petapi.NewClient(petapi.Config{
		BaseURL: cfg.Directory.BaseURL,
		APIKey:  cfg.Directory.APIKey,
		Timeout: cfg.Directory.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set DIRECTORY_BASE_URL or directory.base_url)", err)
	}

	return &session{
		sync:   intake.NewSynchronizer(client, intake.Options{Logger: log, Metrics: metrics.NewUnregistered()}),
		client: client,
	}, nil
}

func exitCode(err error) int {
	var verr *intake.ValidationError
	var terr *intake.TransportError
	switch {
	case errors.As(err, &verr):
		return exitValidation
	case errors.Is(err, intake.ErrNotFound):
		return exitNotFound
	case errors.As(err, &terr):
		return exitTransport
	default:
		return exitFailure
	}
}

type validationOutput struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// report imprime el detalle por campo si err es de validación y devuelve err.
func report(out io.Writer, err error) error {
	if fields, ok := intake.FieldErrorsOf(err); ok {
		_ = printJSON(out, validationOutput{Error: "validation failed", Fields: fields})
	}
	return err
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
