package service

import (
	"basegraph.app/surveys/common/id"
	"basegraph.app/surveys/internal/queue"
)

// ServicesConfig holds the dependencies shared by every survey service.
type ServicesConfig struct {
	Stores        StoreProvider
	TxRunner      TxRunner
	Recipients    RecipientGenerator
	EventProducer queue.Producer
	IDs           id.Generator
}

type Services struct {
	cfg ServicesConfig
}

func NewServices(cfg ServicesConfig) *Services {
	if cfg.EventProducer == nil {
		cfg.EventProducer = queue.NewNoopProducer()
	}
	if cfg.IDs == nil {
		cfg.IDs = id.Snowflake()
	}
	return &Services{cfg: cfg}
}

func (s *Services) Templates() TemplateService {
	return NewTemplateService(s.cfg.Stores, s.cfg.TxRunner, s.cfg.IDs)
}

func (s *Services) Runs() RunService {
	return NewRunService(s.cfg.Stores, s.cfg.TxRunner, s.cfg.Recipients, s.cfg.EventProducer, s.cfg.IDs)
}

func (s *Services) Instances() InstanceService {
	return NewInstanceService(s.cfg.Stores, s.cfg.TxRunner, s.cfg.Recipients, s.cfg.EventProducer, s.cfg.IDs)
}

func (s *Services) ChangeLogs() ChangeLogService {
	return NewChangeLogService(s.cfg.Stores)
}
