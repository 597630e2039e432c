// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"estetica-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		log.Println("Twilio not configured, appointment reminders disabled")
		return
	}

	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Appointment reminder scheduler started")
}

// SendDailyReminders notifies every client with an appointment tomorrow.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily appointment reminder processing...")

	var salons []models.Salon
	if err := s.db.Find(&salons).Error; err != nil {
		log.Printf("Failed to fetch salons: %v", err)
		return
	}

	for _, salon := range salons {
		s.ProcessSalonReminders(salon.ID)
	}

	log.Println("Daily appointment reminder processing completed")
}

func (s *ReminderService) ProcessSalonReminders(salonID uuid.UUID) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.Where("salon_id = ? AND scheduled_at >= ? AND scheduled_at < ?", salonID, from, to).
		Find(&appointments).Error; err != nil {
		log.Printf("Salon %s: failed to fetch tomorrow's appointments: %v", salonID, err)
		return
	}

	for _, appointment := range appointments {
		// Skip appointments already reminded
		var count int64
		s.db.Model(&models.ReminderLog{}).
			Where("appointment_id = ? AND status = ?", appointment.ID, "sent").
			Count(&count)
		if count > 0 {
			continue
		}

		var client models.Client
		if err := s.db.First(&client, "id = ?", appointment.ClientID).Error; err != nil {
			log.Printf("Salon %s: client %s not found for appointment %s", salonID, appointment.ClientID, appointment.ID)
			continue
		}
		if client.Phone == "" {
			continue
		}

		s.sendReminder(salonID, appointment, client)
	}
}

func (s *ReminderService) sendReminder(salonID uuid.UUID, appointment models.Appointment, client models.Client) {
	message := fmt.Sprintf("Hola %s! Te recordamos tu turno de %s manana a las %s.",
		client.Name, appointment.ServiceName, appointment.ScheduledAt.Format("15:04"))

	// WhatsApp if the phone is in E.164 format, else SMS
	channel := "sms"
	to := client.Phone
	if strings.HasPrefix(client.Phone, "+") {
		to = "whatsapp:" + client.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", client.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", client.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", client.Phone)
	}

	reminderLog := models.ReminderLog{
		SalonID:       salonID,
		AppointmentID: appointment.ID,
		ClientName:    client.Name,
		Phone:         client.Phone,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appointment.ID, err)
	}
}
