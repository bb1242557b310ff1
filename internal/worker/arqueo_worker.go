package worker

// arqueo_worker.go
// Processes drawer-close summary jobs from QueueResumenArqueo and sends
// the summary to the configured supervision address via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/milagrosarganin/x3-padel-center-website/internal/infra"

	"github.com/rs/zerolog/log"
)

// ResumenArqueoPayload is the job envelope sent to QueueResumenArqueo.
// Amounts travel as fixed-point strings so the payload never loses precision
// in JSON.
type ResumenArqueoPayload struct {
	ArqueoID       string `json:"arqueo_id"`
	FechaApertura  string `json:"fecha_apertura"`
	FechaCierre    string `json:"fecha_cierre"`
	SaldoInicial   string `json:"saldo_inicial"`
	TotalVentas    string `json:"total_ventas"`
	TotalGastos    string `json:"total_gastos"`
	SaldoEsperado  string `json:"saldo_esperado"`
	SaldoDeclarado string `json:"saldo_declarado"`
	Diferencia     string `json:"diferencia"`
}

// ResumenArqueoWorker emails the close summary of a drawer session.
type ResumenArqueoWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewResumenArqueoWorker(mailer *infra.Mailer, to string) *ResumenArqueoWorker {
	return &ResumenArqueoWorker{mailer: mailer, to: to}
}

// Process sends the arqueo summary email. Returning an error triggers the
// pool's retry, then the DLQ.
func (w *ResumenArqueoWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload ResumenArqueoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("arqueo_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}
	if w.to == "" {
		log.Debug().Msg("arqueo_worker: no destination address configured, skipping")
		return nil
	}

	shortID := payload.ArqueoID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	subject := fmt.Sprintf("Cierre de caja %s — diferencia %s", shortID, payload.Diferencia)
	body := formatResumen(payload)

	if err := w.mailer.SendResumen(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("to", w.to).Msg("arqueo_worker: failed to send email")
		return err
	}
	log.Info().Str("arqueo_id", payload.ArqueoID).Str("to", w.to).Msg("arqueo_worker: resumen sent")
	return nil
}

func formatResumen(p ResumenArqueoPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Resumen de cierre de caja\n\n")
	fmt.Fprintf(&b, "Arqueo:          %s\n", p.ArqueoID)
	fmt.Fprintf(&b, "Apertura:        %s\n", p.FechaApertura)
	fmt.Fprintf(&b, "Cierre:          %s\n\n", p.FechaCierre)
	fmt.Fprintf(&b, "Saldo inicial:   $%s\n", p.SaldoInicial)
	fmt.Fprintf(&b, "Total ventas:    $%s\n", p.TotalVentas)
	fmt.Fprintf(&b, "Total gastos:    $%s\n", p.TotalGastos)
	fmt.Fprintf(&b, "Saldo esperado:  $%s\n", p.SaldoEsperado)
	fmt.Fprintf(&b, "Saldo declarado: $%s\n", p.SaldoDeclarado)
	fmt.Fprintf(&b, "Diferencia:      $%s\n", p.Diferencia)
	return b.String()
}
