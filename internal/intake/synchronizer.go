// Package intake reconcilia el registro local de un formulario de ingreso
// con el Directory Service remoto.
//
// Cada operación valida antes de escribir, hace como máximo una llamada
// remota y devuelve nil o uno de: *ValidationError, ErrNotFound,
// *TransportError. El registro local solo cambia cuando la operación
// termina bien. El Synchronizer no es seguro para llamadas superpuestas
// sobre el mismo registro: el llamador las serializa.
package intake

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pet-intake/internal/domain/pets"
	"pet-intake/internal/platform/logger"
	"pet-intake/internal/platform/metrics"
	"pet-intake/internal/ports/directory"
)

const (
	OpFetch  = "fetch"
	OpSave   = "save"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Mensajes de ID faltante por operación.
var idRequired = map[string]string{
	OpFetch:  "Pet ID is required for search.",
	OpUpdate: "Pet ID is required to update.",
	OpDelete: "Pet ID is required to delete.",
}

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

type Synchronizer struct {
	dir     directory.Service
	log     logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewSynchronizer(dir directory.Service, opts Options) *Synchronizer {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Synchronizer{
		dir:     dir,
		log:     log.With(map[string]any{"component": "intake.synchronizer"}),
		metrics: opts.Metrics,
		tracer:  otel.Tracer("pet-intake/internal/intake"),
	}
}

// Fetch reemplaza *rec con el registro remoto. Si no existe o falla, rec queda igual.
func (s *Synchronizer) Fetch(ctx context.Context, rec *pets.Pet, id string) error {
	id = strings.TrimSpace(id)
	ctx, done := s.begin(ctx, OpFetch, id)

	if id == "" {
		return done(missingID(OpFetch))
	}

	got, err := s.dir.Get(ctx, id)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return done(ErrNotFound)
		}
		return done(&TransportError{Op: OpFetch, Err: err})
	}

	if got.ID == "" {
		got.ID = id
	}
	*rec = got
	return done(nil)
}

// Save crea el registro remoto. Si sale bien, rec vuelve al estado vacío y se
// devuelve lo que guardó el servicio (con su ID asignado).
func (s *Synchronizer) Save(ctx context.Context, rec *pets.Pet) (pets.Pet, error) {
	ctx, done := s.begin(ctx, OpSave, rec.ID)

	if errs := pets.Validate(*rec); !errs.Empty() {
		return pets.Pet{}, done(&ValidationError{Fields: errs})
	}

	created, err := s.dir.Create(ctx, *rec)
	if err != nil {
		return pets.Pet{}, done(&TransportError{Op: OpSave, Err: err})
	}

	rec.Reset()
	return created, done(nil)
}

// Update exige ID además de las reglas de validación; ambos problemas se
// reportan juntos. Si sale bien, rec queda tal como se envió.
func (s *Synchronizer) Update(ctx context.Context, rec *pets.Pet) error {
	id := strings.TrimSpace(rec.ID)
	ctx, done := s.begin(ctx, OpUpdate, id)

	errs := pets.Validate(*rec)
	if id == "" {
		errs["id"] = idRequired[OpUpdate]
	}
	if !errs.Empty() {
		return done(&ValidationError{Fields: errs})
	}

	if _, err := s.dir.Update(ctx, id, *rec); err != nil {
		return done(&TransportError{Op: OpUpdate, Err: err})
	}
	return done(nil)
}

// Delete borra el registro remoto; si sale bien rec vuelve al estado vacío.
func (s *Synchronizer) Delete(ctx context.Context, rec *pets.Pet, id string) error {
	id = strings.TrimSpace(id)
	ctx, done := s.begin(ctx, OpDelete, id)

	if id == "" {
		return done(missingID(OpDelete))
	}

	if err := s.dir.Delete(ctx, id); err != nil {
		return done(&TransportError{Op: OpDelete, Err: err})
	}

	rec.Reset()
	return done(nil)
}

func missingID(op string) error {
	return &ValidationError{Fields: pets.FieldErrors{"id": idRequired[op]}}
}

// begin abre span y cronómetro; done cierra ambos, loguea y devuelve err sin tocarlo.
func (s *Synchronizer) begin(ctx context.Context, op, id string) (context.Context, func(error) error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "intake."+op, trace.WithAttributes(
		attribute.String("pet.id", id),
	))

	return ctx, func(err error) error {
		outcome := OutcomeOf(err)

		span.SetAttributes(attribute.String("intake.outcome", outcome.String()))
		if outcome == OutcomeTransport {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		s.metrics.ObserveSync(op, outcome.String(), start)

		fields := map[string]any{
			"op":      op,
			"id":      id,
			"outcome": outcome.String(),
		}
		switch outcome {
		case OutcomeSuccess:
			s.log.Info("record synced", fields)
		case OutcomeTransport:
			fields["error"] = err.Error()
			s.log.Error("directory call failed", fields)
		default:
			if fe, ok := FieldErrorsOf(err); ok {
				fields["fields"] = fe.Fields()
			}
			s.log.Warn("record not synced", fields)
		}
		return err
	}
}
