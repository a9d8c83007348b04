package api

import (
	"log/slog"
	"net"
	"strconv"

	"healthtrack/internal/adapter/storage"
	"healthtrack/internal/app/insightsapp"
	"healthtrack/internal/app/profileapp"
	"healthtrack/internal/app/syncapp"
	"healthtrack/internal/app/trackerapp"
	"healthtrack/internal/app/unitofwork"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func DBContext(db storage.DB) Option {
	return func(s *Server) {
		s.db = db
	}
}

func MessageBus(bus unitofwork.MessageBus) Option {
	return func(s *Server) {
		s.msgBus = bus
	}
}

func ProfileService(service *profileapp.Service) Option {
	return func(s *Server) {
		s.profileService = service
	}
}

func TrackerService(service *trackerapp.Service) Option {
	return func(s *Server) {
		s.trackerService = service
	}
}

func InsightsService(service *insightsapp.Service) Option {
	return func(s *Server) {
		s.insightsService = service
	}
}

func SyncService(service *syncapp.Service) Option {
	return func(s *Server) {
		s.syncService = service
	}
}

// PullWindowDays sets how far back a sync pull without an explicit since date
// reaches.
func PullWindowDays(days int) Option {
	return func(s *Server) {
		s.pullWindowDays = days
	}
}
