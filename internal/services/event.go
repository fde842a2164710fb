package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/avolkoff/calendar-api/internal/logger"
	"github.com/avolkoff/calendar-api/internal/models"
)

var (
	ErrEventNotFound = errors.New("event does not exist")
	ErrEventNotOwned = errors.New("user does not own the target event")
)

// EventReader defines read operations for events.
type EventReader interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (*models.EventDB, error)
	GetAttendees(ctx context.Context, eventID uuid.UUID) ([]models.UserInfo, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.EventView, error)
}

// EventWriter defines write operations for events.
type EventWriter interface {
	Save(ctx context.Context, eventID, ownerID uuid.UUID, title, description string, start, end int64) error
	Update(ctx context.Context, eventID uuid.UUID, upd models.EventUpdate) error
	Delete(ctx context.Context, eventID uuid.UUID) error
	AddAttendee(ctx context.Context, eventID, userID uuid.UUID) error
	RemoveAttendee(ctx context.Context, eventID, userID uuid.UUID) error
}

// AttendeeGetter resolves user ids when adding attendees.
type AttendeeGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// EventListCache caches per-user event lists.
type EventListCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]models.EventView, error)
	Set(ctx context.Context, userID uuid.UUID, events []models.EventView) error
	Purge(ctx context.Context, userIDs ...uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventService handles event CRUD, attendance and notification publishing.
type EventService struct {
	readRepo    EventReader
	writeRepo   EventWriter
	users       AttendeeGetter
	cache       EventListCache
	kafkaWriter KafkaWriter
}

// NewEventService creates a new EventService. Cache and Kafka writer may
// be nil, in which case the corresponding steps are skipped.
func NewEventService(
	readRepo EventReader,
	writeRepo EventWriter,
	users AttendeeGetter,
	cache EventListCache,
	kafkaWriter KafkaWriter,
) *EventService {
	return &EventService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		users:       users,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishNotification publishes an event notification to Kafka.
// Publishing is best effort: failures are logged, never returned.
func (svc *EventService) publishNotification(ctx context.Context, action string, eventID, actorID uuid.UUID, targetID *uuid.UUID) {
	if svc.kafkaWriter == nil {
		return
	}

	ntf := models.EventNotification{
		NotificationID: uuid.NewString(),
		Timestamp:      time.Now().Unix(),
		Action:         action,
		EventID:        eventID.String(),
		ActorID:        actorID.String(),
	}
	if targetID != nil {
		ntf.TargetID = targetID.String()
	}

	data, err := json.Marshal(ntf)
	if err != nil {
		logger.Log.Errorw("failed to marshal notification", "notification_id", ntf.NotificationID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ntf.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish notification", "notification_id", ntf.NotificationID, "error", err)
	} else {
		logger.Log.Infow("notification published", "notification_id", ntf.NotificationID, "action", action)
	}
}

// purgeCache drops cached lists for the given users. Best effort.
func (svc *EventService) purgeCache(ctx context.Context, userIDs ...uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Purge(ctx, userIDs...); err != nil {
		logger.Log.Errorw("failed to purge event list cache", "error", err)
	}
}

// affectedUsers returns the owner plus all attendees of an event, the set
// of users whose cached lists a mutation invalidates.
func (svc *EventService) affectedUsers(ctx context.Context, event *models.EventDB) []uuid.UUID {
	ids := []uuid.UUID{event.OwnerID}
	attendees, err := svc.readRepo.GetAttendees(ctx, event.EventID)
	if err != nil {
		logger.Log.Errorw("failed to get attendees", "event_id", event.EventID, "error", err)
		return ids
	}
	for _, a := range attendees {
		ids = append(ids, a.ID)
	}
	return ids
}

// List returns the union of events the user owns and attends, serving
// from the cache when possible.
func (svc *EventService) List(ctx context.Context, userID uuid.UUID) ([]models.EventView, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("event list cache read failed", "user_id", userID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	events, err := svc.readRepo.ListForUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list events", "user_id", userID, "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, userID, events); err != nil {
			logger.Log.Errorw("event list cache write failed", "user_id", userID, "error", err)
		}
	}

	return events, nil
}

// Create stores a new event owned by the caller with an empty attendee set.
func (svc *EventService) Create(ctx context.Context, ownerID uuid.UUID, title, description string, start, end int64) (uuid.UUID, error) {
	eventID := uuid.New()

	if err := svc.writeRepo.Save(ctx, eventID, ownerID, title, description, start, end); err != nil {
		logger.Log.Errorw("failed to save event", "owner_id", ownerID, "error", err)
		return uuid.Nil, err
	}

	svc.purgeCache(ctx, ownerID)
	svc.publishNotification(ctx, models.ActionEventCreated, eventID, ownerID, nil)

	return eventID, nil
}

// Update applies a sparse patch to an event. Owner only.
func (svc *EventService) Update(ctx context.Context, callerID, eventID uuid.UUID, upd models.EventUpdate) error {
	event, err := svc.readRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.OwnerID != callerID {
		return ErrEventNotOwned
	}

	if err := svc.writeRepo.Update(ctx, eventID, upd); err != nil {
		logger.Log.Errorw("failed to update event", "event_id", eventID, "error", err)
		return err
	}

	svc.purgeCache(ctx, svc.affectedUsers(ctx, event)...)
	svc.publishNotification(ctx, models.ActionEventUpdated, eventID, callerID, nil)

	return nil
}

// Delete removes an event. Owner only.
func (svc *EventService) Delete(ctx context.Context, callerID, eventID uuid.UUID) error {
	event, err := svc.readRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.OwnerID != callerID {
		return ErrEventNotOwned
	}

	affected := svc.affectedUsers(ctx, event)

	if err := svc.writeRepo.Delete(ctx, eventID); err != nil {
		logger.Log.Errorw("failed to delete event", "event_id", eventID, "error", err)
		return err
	}

	svc.purgeCache(ctx, affected...)
	svc.publishNotification(ctx, models.ActionEventDeleted, eventID, callerID, nil)

	return nil
}

// AddAttendee invites a user to an event. Owner only; the target user
// must exist. Adding an existing attendee is a no-op.
func (svc *EventService) AddAttendee(ctx context.Context, callerID, eventID, userID uuid.UUID) error {
	event, err := svc.readRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.OwnerID != callerID {
		return ErrEventNotOwned
	}

	attendee, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if attendee == nil {
		return ErrUserDoesNotExist
	}

	if err := svc.writeRepo.AddAttendee(ctx, eventID, userID); err != nil {
		logger.Log.Errorw("failed to add attendee", "event_id", eventID, "user_id", userID, "error", err)
		return err
	}

	svc.purgeCache(ctx, append(svc.affectedUsers(ctx, event), userID)...)
	svc.publishNotification(ctx, models.ActionAttendeeAdded, eventID, callerID, &userID)

	return nil
}

// RemoveAttendee removes a user from an event. Allowed for the owner and
// for an attendee removing themself. Removing a non-attendee is a no-op.
func (svc *EventService) RemoveAttendee(ctx context.Context, callerID, eventID, userID uuid.UUID) error {
	event, err := svc.readRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.OwnerID != callerID && callerID != userID {
		return ErrEventNotOwned
	}

	if err := svc.writeRepo.RemoveAttendee(ctx, eventID, userID); err != nil {
		logger.Log.Errorw("failed to remove attendee", "event_id", eventID, "user_id", userID, "error", err)
		return err
	}

	svc.purgeCache(ctx, append(svc.affectedUsers(ctx, event), userID)...)
	svc.publishNotification(ctx, models.ActionAttendeeRemoved, eventID, callerID, &userID)

	return nil
}
