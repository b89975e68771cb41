package simpleportfolio

import (
	"context"
	"log/slog"
)

// NoopEventSink discards all events.
type NoopEventSink struct{}

// NewNoopEventSink creates an event sink that does nothing.
func NewNoopEventSink() *NoopEventSink { return &NoopEventSink{} }

func (NoopEventSink) IntroUpdated(context.Context, *IntroSection) error        { return nil }
func (NoopEventSink) OtherUpdated(context.Context, *OtherSection) error        { return nil }
func (NoopEventSink) ContentItemCreated(context.Context, *ContentItem) error   { return nil }
func (NoopEventSink) ContentItemUpdated(context.Context, *ContentItem) error   { return nil }
func (NoopEventSink) ContentItemDeleted(context.Context, string) error         { return nil }
func (NoopEventSink) SectionCreated(context.Context, *CustomSection) error     { return nil }
func (NoopEventSink) SectionUpdated(context.Context, *CustomSection) error     { return nil }
func (NoopEventSink) SectionDeleted(context.Context, string) error             { return nil }

// LoggingEventSink writes one structured log line per mutation.
type LoggingEventSink struct {
	logger *slog.Logger
}

// NewLoggingEventSink creates an event sink backed by the given logger; nil
// uses the default logger.
func NewLoggingEventSink(logger *slog.Logger) *LoggingEventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingEventSink{logger: logger}
}

func (s *LoggingEventSink) IntroUpdated(ctx context.Context, intro *IntroSection) error {
	s.logger.InfoContext(ctx, "intro updated", "intro_id", intro.ID)
	return nil
}

func (s *LoggingEventSink) OtherUpdated(ctx context.Context, other *OtherSection) error {
	s.logger.InfoContext(ctx, "other section updated", "other_id", other.ID)
	return nil
}

func (s *LoggingEventSink) ContentItemCreated(ctx context.Context, item *ContentItem) error {
	s.logger.InfoContext(ctx, "content item created", "item_id", item.ID, "type", item.Type, "section_id", item.SectionID)
	return nil
}

func (s *LoggingEventSink) ContentItemUpdated(ctx context.Context, item *ContentItem) error {
	s.logger.InfoContext(ctx, "content item updated", "item_id", item.ID)
	return nil
}

func (s *LoggingEventSink) ContentItemDeleted(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "content item deleted", "item_id", id)
	return nil
}

func (s *LoggingEventSink) SectionCreated(ctx context.Context, section *CustomSection) error {
	s.logger.InfoContext(ctx, "section created", "section_id", section.ID, "type", section.Type, "order", section.Order)
	return nil
}

func (s *LoggingEventSink) SectionUpdated(ctx context.Context, section *CustomSection) error {
	s.logger.InfoContext(ctx, "section updated", "section_id", section.ID)
	return nil
}

func (s *LoggingEventSink) SectionDeleted(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "section deleted", "section_id", id)
	return nil
}
