package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/vetclinic-api/internal/models"
)

const queueSize = 100

type Kind string

const (
	KindNewAppointment Kind = "new_appointment"
	KindNewPatient     Kind = "new_patient"
)

type Message struct {
	Kind    Kind
	Subject string
	Body    string
}

// SettingsSource yields the current, fully merged clinic settings.
type SettingsSource interface {
	Current(ctx context.Context) (models.Settings, error)
}

// Notifier mails the clinic in the background. Notify returns at once and
// nothing about delivery ever reaches the caller.
type Notifier struct {
	sender   Sender
	settings SettingsSource
	queue    chan Message
	done     chan struct{}
}

func NewNotifier(sender Sender, settings SettingsSource) *Notifier {
	n := &Notifier{
		sender:   sender,
		settings: settings,
		queue:    make(chan Message, queueSize),
		done:     make(chan struct{}),
	}

	go n.worker()
	return n
}

func (n *Notifier) worker() {
	defer close(n.done)

	for msg := range n.queue {
		n.deliver(msg)
	}
}

func (n *Notifier) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := n.settings.Current(ctx)
	if err != nil {
		zap.L().Warn("notification skipped, settings unavailable",
			zap.String("kind", string(msg.Kind)),
			zap.Error(err),
		)
		return
	}

	if !enabled(s.Notifications, msg.Kind) || s.Clinic.Email == "" {
		return
	}

	err = n.sender.Send(s.Clinic.Email, msg.Subject, msg.Body)
	switch {
	case errors.Is(err, ErrNotConfigured):
		zap.L().Debug("notification skipped, smtp not configured", zap.String("kind", string(msg.Kind)))
	case err != nil:
		zap.L().Warn("notification failed",
			zap.String("kind", string(msg.Kind)),
			zap.Error(err),
		)
	}
}

func enabled(ns models.NotificationSettings, kind Kind) bool {
	switch kind {
	case KindNewAppointment:
		return ns.NewAppointmentEmail
	case KindNewPatient:
		return ns.NewPatientEmail
	}
	return false
}

// Notify never blocks; when the queue is full the message is dropped.
func (n *Notifier) Notify(msg Message) {
	select {
	case n.queue <- msg:
	default:
		zap.L().Warn("notification queue full, dropping message", zap.String("kind", string(msg.Kind)))
	}
}

// Close drains the queue and waits for the worker.
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

// ===============================
// Messages
// ===============================

func AppointmentCreated(ap *models.Appointment) Message {
	return Message{
		Kind:    KindNewAppointment,
		Subject: fmt.Sprintf("Nueva cita: %s %s", ap.Date, ap.Time),
		Body: fmt.Sprintf(
			"Se agendó una nueva cita.\n\nPaciente: %s\nPropietario: %s\nFecha: %s\nHora: %s\nMotivo: %s\n",
			ap.PatientName, ap.Owner, ap.Date, ap.Time, ap.Reason,
		),
	}
}

func PatientCreated(p *models.Patient) Message {
	return Message{
		Kind:    KindNewPatient,
		Subject: "Nuevo paciente: " + p.Name,
		Body: fmt.Sprintf(
			"Se registró un nuevo paciente.\n\nNombre: %s\nPropietario: %s\nEmail: %s\nSíntomas: %s\n",
			p.Name, p.Owner, p.Email, p.Symptoms,
		),
	}
}
