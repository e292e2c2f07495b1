package console

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gorilla/websocket"
	"github.com/pbf-league/huddle/internal/app/coordinator"
	"github.com/pbf-league/huddle/internal/aws/storage"
	"github.com/pbf-league/huddle/internal/domains/entities"
	"github.com/pbf-league/huddle/pkg/logging"
	"go.uber.org/zap"
)

// server is the operator console: a websocket endpoint per game thread
// that streams the rendered scoreboard to every connected viewer
// whenever the stored game changes.
type server struct {
	address  string
	upgrader websocket.Upgrader

	config  Config
	watches sync.Map
	mu      sync.Mutex

	storageClient *storage.Client
}

type watch struct {
	threadId string

	mu       sync.Mutex
	viewers  map[*websocket.Conn]bool
	rendered string
}

func NewServer() *server {
	cfg := NewConfig()
	awsCfg, _ := awsconfig.LoadDefaultConfig(context.TODO())
	srv := &server{
		address: "0.0.0.0:" + cfg.Port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
		config: cfg,
		storageClient: storage.NewClient(
			dynamodb.NewFromConfig(awsCfg),
			storage.Config{
				GamesTableName: aws.String(cfg.GamesTableName),
			},
		),
	}
	return srv
}

// Start method    starts the console server
func (s *server) Start() error {
	http.HandleFunc("/game/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Error(
				"failed to upgrade connection",
				zap.String("error", err.Error()),
			)
			return
		}
		defer conn.Close()

		threadId := strings.TrimPrefix(r.URL.Path, "/game/")
		wt, err := s.loadWatch(threadId)
		if err != nil {
			logging.Error("failed to load game", zap.String("error", err.Error()))
			return
		}
		s.handleViewerJoin(conn, wt)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.handleViewerDisconnect(conn, wt)
				logging.Info(
					"connection closed",
					zap.String("remote_address", conn.RemoteAddr().String()),
					zap.Error(err),
				)
				break
			}
		}
	})
	logging.Info("console server started", zap.String("port", s.config.Port))
	return http.ListenAndServe(s.address, nil)
}

/*
loadWatch method    loads the watch for the given threadId.
If no viewers are watching the thread yet, verify the game exists and
start a poll loop for it.
*/
func (s *server) loadWatch(threadId string) (*watch, error) {
	ctx := context.Background()

	s.mu.Lock()
	defer s.mu.Unlock()

	value, loaded := s.watches.Load(threadId)
	if loaded {
		wt, ok := value.(*watch)
		if ok {
			logging.Info("watch loaded", zap.String("thread", threadId))
			return wt, nil
		}
		return nil, ErrFailedToLoadWatch
	}

	game, err := s.storageClient.GetGame(ctx, threadId)
	if err != nil {
		return nil, err
	}
	schedule, err := s.storageClient.GetSchedule(ctx, threadId)
	if err != nil {
		schedule = entities.Schedule{}
	}

	wt := &watch{
		threadId: threadId,
		viewers:  make(map[*websocket.Conn]bool),
		rendered: coordinator.RenderGame(&game, schedule),
	}
	s.watches.Store(threadId, wt)
	go s.poll(wt)
	logging.Info("watch started", zap.String("thread", threadId))
	return wt, nil
}

// poll rereads the stored game on an interval and pushes the rendered
// scoreboard to every viewer when it changes. Stops once the last
// viewer disconnects.
func (s *server) poll(wt *watch) {
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for range ticker.C {
		wt.mu.Lock()
		if len(wt.viewers) == 0 {
			wt.mu.Unlock()
			s.removeWatch(wt.threadId)
			return
		}
		wt.mu.Unlock()

		ctx := context.Background()
		game, err := s.storageClient.GetGame(ctx, wt.threadId)
		if err != nil {
			logging.Error("failed to reload game",
				zap.String("thread", wt.threadId),
				zap.Error(err),
			)
			continue
		}
		schedule, err := s.storageClient.GetSchedule(ctx, wt.threadId)
		if err != nil {
			schedule = entities.Schedule{}
		}

		rendered := coordinator.RenderGame(&game, schedule)
		wt.mu.Lock()
		if rendered != wt.rendered {
			wt.rendered = rendered
			for conn := range wt.viewers {
				if err := conn.WriteMessage(websocket.TextMessage, []byte(rendered)); err != nil {
					delete(wt.viewers, conn)
					conn.Close()
				}
			}
		}
		wt.mu.Unlock()
	}
}

func (s *server) handleViewerJoin(conn *websocket.Conn, wt *watch) {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	wt.viewers[conn] = true
	if err := conn.WriteMessage(websocket.TextMessage, []byte(wt.rendered)); err != nil {
		delete(wt.viewers, conn)
		conn.Close()
	}
}

func (s *server) handleViewerDisconnect(conn *websocket.Conn, wt *watch) {
	wt.mu.Lock()
	defer wt.mu.Unlock()
	delete(wt.viewers, conn)
}

func (s *server) removeWatch(threadId string) {
	s.watches.Delete(threadId)
}
