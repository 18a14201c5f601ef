package cmd

import (
	"log/slog"
	"time"

	httpadapter "rentalvoice/internal/adapters/in/http"
	"rentalvoice/internal/adapters/in/voice"
	"rentalvoice/internal/adapters/out/kv/orderstore"
	"rentalvoice/internal/adapters/out/voiceagent"
	"rentalvoice/internal/core/application/readmodel"
	"rentalvoice/internal/core/application/usecases/commands"
	"rentalvoice/internal/core/application/usecases/queries"
	"rentalvoice/internal/core/ports"
	"rentalvoice/internal/jobs"
)

// voiceAgentTimeout bounds the session create and delete calls.
const voiceAgentTimeout = 10 * time.Second

// CompositionRoot wires adapters, handlers, the read model, and the session
// manager. The ingest handler and the session manager are stateful and exist
// exactly once per root.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orderStore     ports.OrderStore
	readModel      *readmodel.ReadModel
	ingestHandler  *commands.IngestOrderCommandHandler
	sessionManager *voice.Manager
}

// NewCompositionRoot builds the object graph over the given key-value store.
func NewCompositionRoot(config Config, kv ports.KeyValueStore, logger *slog.Logger) *CompositionRoot {
	orderStore := orderstore.NewStore(kv)
	readModel := readmodel.New(orderStore)
	ingestHandler := commands.NewIngestOrderCommandHandler(orderStore, readModel, time.Now, logger)

	agentClient := voiceagent.NewClient(config.VoiceAgentURL, voiceAgentTimeout, logger)
	sessionManager := voice.NewManager(agentClient, config.VoiceAgentID, ingestHandler, logger)

	return &CompositionRoot{
		config:         config,
		logger:         logger,
		orderStore:     orderStore,
		readModel:      readModel,
		ingestHandler:  ingestHandler,
		sessionManager: sessionManager,
	}
}

// ReadModel returns the shared order projection.
func (c *CompositionRoot) ReadModel() *readmodel.ReadModel {
	return c.readModel
}

// SessionManager returns the voice session manager.
func (c *CompositionRoot) SessionManager() *voice.Manager {
	return c.sessionManager
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderStore, c.readModel, c.readModel, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readModel)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.readModel)
}

// CreateHTTPServer assembles the HTTP surface over the shared handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderStatsQueryHandler(),
		c.sessionManager,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.readModel, c.config.ReadModelRefreshCron, c.logger)
}
