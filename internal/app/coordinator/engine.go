package coordinator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/pbf-league/huddle/internal/domains/entities"
	"github.com/pbf-league/huddle/pkg/logging"
	"go.uber.org/zap"
)

// Engine handles one inbound reply as a single unit of work: load the
// aggregate, validate, transition, persist, republish. Replies for the
// same game are serialized by a per-thread mutex; different games never
// share state.
type Engine struct {
	cfg        Config
	validator  TurnValidator
	transition Transitioner
	links      links

	store     GameStore
	directory Directory
	gateway   MessagingGateway
	resolver  PlayResolver
	notifier  Notifier
	alerter   OperatorAlerter

	locks sync.Map

	flip func() bool
	draw func(min, max int) int
}

func NewEngine(
	cfg Config,
	store GameStore,
	directory Directory,
	gateway MessagingGateway,
	resolver PlayResolver,
	notifier Notifier,
	alerter OperatorAlerter,
) *Engine {
	return &Engine{
		cfg:        cfg,
		validator:  NewTurnValidator(cfg),
		transition: NewTransitioner(cfg),
		links:      newLinks(cfg),
		store:      store,
		directory:  directory,
		gateway:    gateway,
		resolver:   resolver,
		notifier:   notifier,
		alerter:    alerter,
		flip:       func() bool { return rand.Intn(2) == 0 },
		draw:       func(min, max int) int { return min + rand.Intn(max-min+1) },
	}
}

func (e *Engine) lockFor(threadId string) *sync.Mutex {
	value, _ := e.locks.LoadOrStore(threadId, &sync.Mutex{})
	return value.(*sync.Mutex)
}

type StartGameRequest struct {
	HomeCoach  string
	AwayCoach  string
	StartTime  string
	Location   string
	Station    string
	HomeRecord string
	AwayRecord string
}

// StartGame verifies both coaches, publishes the game thread, assigns
// the coaching staffs in the directory and opens the coin-toss phase.
func (e *Engine) StartGame(ctx context.Context, req StartGameRequest) (string, error) {
	homeCoach := strings.ToLower(req.HomeCoach)
	awayCoach := strings.ToLower(req.AwayCoach)

	home, away, err := e.verifyCoaches(ctx, homeCoach, awayCoach)
	if err != nil {
		logging.Debug("coaches not verified", zap.Error(err))
		return "Something went wrong, someone is no longer an acceptable coach. Please try to start the game again", err
	}

	if req.HomeRecord != "" {
		home.Record = req.HomeRecord
	}
	if req.AwayRecord != "" {
		away.Record = req.AwayRecord
	}

	game := entities.NewGame(home, away, e.cfg.QuarterSeconds, e.cfg.Timeouts)
	game.StartTime = req.StartTime
	game.Location = req.Location
	game.Station = req.Station

	threadId, err := e.gateway.PublishThread(ctx, renderGameTitle(game), RenderGame(game, entities.Schedule{}))
	if err != nil {
		return genericFailureText, fmt.Errorf("failed to publish game thread: %w", err)
	}
	game.Thread = threadId
	logging.Debug("game thread created", zap.String("thread", threadId))

	for _, coach := range append(game.Home.Coaches, game.Away.Coaches...) {
		if err := e.directory.AssignCoach(ctx, strings.ToLower(coach), threadId); err != nil {
			return genericFailureText, fmt.Errorf("failed to assign coach %s: %w", coach, err)
		}
	}

	toss := fmt.Sprintf(
		"The game has started! %s, you're home. %s, you're away, call **heads** or **tails** in the air.",
		coachString(game, entities.Home),
		coachString(game, entities.Away),
	)
	if err := e.announce(ctx, game, toss); err != nil {
		return genericFailureText, err
	}

	game.Dirty = true
	if err := e.persistAndPublish(ctx, game); err != nil {
		return genericFailureText, err
	}

	logging.Debug("game started", zap.String("thread", threadId), zap.String("waiting_id", game.Status.Waiting.MessageId))
	return fmt.Sprintf("Game started. Find it [here](%s).", e.links.Thread(threadId)), nil
}

func (e *Engine) verifyCoaches(ctx context.Context, coaches ...string) (entities.Team, entities.Team, error) {
	seen := map[string]bool{}
	teamSeen := map[string]bool{}
	teams := make([]entities.Team, 0, len(coaches))

	for _, coach := range coaches {
		if seen[coach] {
			return entities.Team{}, entities.Team{}, fmt.Errorf("duplicate coach: %s", coach)
		}
		seen[coach] = true

		team, err := e.directory.TeamForCoach(ctx, coach)
		if err != nil {
			return entities.Team{}, entities.Team{}, fmt.Errorf("no team for coach %s: %w", coach, err)
		}
		if teamSeen[team.Name] {
			return entities.Team{}, entities.Team{}, fmt.Errorf("both coaches on team %s", team.Name)
		}
		teamSeen[team.Name] = true

		if _, err := e.directory.GameForCoach(ctx, coach); err == nil {
			return entities.Team{}, entities.Team{}, fmt.Errorf("coach %s already has an active game", coach)
		}
		teams = append(teams, team)
	}

	return teams[0], teams[1], nil
}

// InboundReply is one message from the external platform: a thread
// comment or a private message reply.
type InboundReply struct {
	Author    string
	MessageId string
	Body      string
}

// HandleReply routes, validates and applies one inbound reply. The
// returned text goes back to the sender on both the accept and reject
// paths.
func (e *Engine) HandleReply(ctx context.Context, reply InboundReply) (string, error) {
	coach := strings.ToLower(reply.Author)

	threadId, err := e.directory.GameForCoach(ctx, coach)
	if err != nil {
		logging.Debug("no active game", zap.String("coach", coach))
		return "I can't find an active game for you.", nil
	}

	lock := e.lockFor(threadId)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.store.GetGame(ctx, threadId)
	if err != nil {
		return genericFailureText, fmt.Errorf("failed to load game %s: %w", threadId, err)
	}

	if game.Errored {
		return "This game is in an errored state, an operator is looking into it.", nil
	}
	if game.Status.Waiting.Action == entities.ActionEnd {
		return "This game is complete.", nil
	}

	claimed := game.Status.Waiting.Action
	if msgCtx, ok := Extract(reply.Body); ok {
		claimed = msgCtx.Action
	}

	if rejection := e.validator.Validate(&game, coach, claimed, reply.MessageId); rejection != nil {
		logging.Debug("reply rejected",
			zap.String("thread", threadId),
			zap.String("coach", coach),
			zap.String("code", rejection.Code),
		)
		return rejection.Guidance, nil
	}

	text, err := e.applyReply(ctx, &game, claimed, reply)
	if err != nil {
		return text, err
	}

	game.Dirty = true
	if err := e.persistAndPublish(ctx, &game); err != nil {
		return genericFailureText, err
	}

	if game.Status.Waiting.Action == entities.ActionEnd {
		e.releaseCoaches(ctx, &game)
	}
	return text, nil
}

// releaseCoaches frees both coaching staffs for their next game once
// this one is complete. Failures are logged; a stuck assignment is an
// operator fix, not a game-state problem.
func (e *Engine) releaseCoaches(ctx context.Context, game *entities.Game) {
	for _, coach := range append(game.Home.Coaches, game.Away.Coaches...) {
		if err := e.directory.ReleaseCoach(ctx, strings.ToLower(coach)); err != nil {
			logging.Error("failed to release coach",
				zap.String("coach", coach),
				zap.Error(err),
			)
		}
	}
}

// applyReply dispatches an accepted reply to the transitioner. On a
// resolution failure the live snapshot is left untouched, the error
// flag is persisted and an operator summary goes out.
func (e *Engine) applyReply(
	ctx context.Context,
	game *entities.Game,
	action entities.ActionKind,
	reply InboundReply,
) (string, error) {
	var events []Event

	switch action {
	case entities.ActionCoin:
		keyword, err := findKeyword(action, reply.Body)
		if err != nil {
			return err.Error(), nil
		}
		winner := game.Status.Waiting.On
		if (keyword == "heads") != e.flip() {
			winner = winner.Negate()
		}
		RecordStatus(game, game.Status.Waiting.MessageId)
		e.transition.ApplyCoinToss(game, winner)
		text := fmt.Sprintf("%s won the toss!", game.Team(winner).Name)
		return text, e.announce(ctx, game, text)

	case entities.ActionDefer:
		keyword, err := findKeyword(action, reply.Body)
		if err != nil {
			return err.Error(), nil
		}
		RecordStatus(game, game.Status.Waiting.MessageId)
		e.transition.ApplyDeferChoice(game, keyword == "receive")
		text := fmt.Sprintf("%s will kick off.", game.Team(game.Status.Possession).Name)
		return text, e.announce(ctx, game, text)

	case entities.ActionKickoff:
		keyword, err := findKeyword(action, reply.Body)
		if err != nil {
			return err.Error(), nil
		}
		play, _ := entities.ParsePlayKind(keyword)
		outcome, err := e.resolver.Resolve(ctx, ResolutionRequest{
			Action: entities.ActionKickoff,
			Play:   play,
		})
		if err != nil {
			return genericFailureText, e.failTransition(ctx, game, err)
		}
		RecordStatus(game, game.Status.Waiting.MessageId)
		events, err = e.transition.ApplyKickoff(game, outcome)
		if err != nil {
			return genericFailureText, e.failTransition(ctx, game, err)
		}
		text := fmt.Sprintf("%s kickoff.", capitalize(keyword))
		return text, e.afterTransition(ctx, game, text, events)

	case entities.ActionPlay:
		keyword, err := findKeyword(action, reply.Body)
		if err != nil {
			return err.Error(), nil
		}
		play, _ := entities.ParsePlayKind(keyword)
		RecordStatus(game, game.Status.Waiting.MessageId)
		e.transition.ApplyPlayCall(game, play)
		return "Got it. Asking the defense for their number.", e.announce(ctx, game, "")

	case entities.ActionDefense:
		number, err := extractNumber(reply.Body, e.cfg.DefenseNumberMin, e.cfg.DefenseNumberMax)
		if err != nil {
			return err.Error(), nil
		}
		if game.Status.PendingPlay == nil {
			return genericFailureText, e.failTransition(ctx, game, fmt.Errorf("defense number with no pending play"))
		}
		play := *game.Status.PendingPlay
		outcome, err := e.resolver.Resolve(ctx, ResolutionRequest{
			Action:        entities.ActionPlay,
			Play:          play,
			OffenseNumber: e.draw(e.cfg.DefenseNumberMin, e.cfg.DefenseNumberMax),
			DefenseNumber: number,
		})
		if err != nil {
			return genericFailureText, e.failTransition(ctx, game, err)
		}
		RecordStatus(game, game.Status.Waiting.MessageId)
		events, err = e.transition.ApplyPlayResult(game, play, outcome)
		if err != nil {
			return genericFailureText, e.failTransition(ctx, game, err)
		}
		text := playResultText(game, play, outcome)
		return text, e.afterTransition(ctx, game, text, events)

	case entities.ActionConversion:
		keyword, err := findKeyword(action, reply.Body)
		if err != nil {
			return err.Error(), nil
		}
		play := entities.PlayPat
		if keyword == "two point" {
			play = entities.PlayTwoPoint
		}
		outcome, err := e.resolver.Resolve(ctx, ResolutionRequest{
			Action: entities.ActionConversion,
			Play:   play,
		})
		if err != nil {
			return genericFailureText, e.failTransition(ctx, game, err)
		}
		RecordStatus(game, game.Status.Waiting.MessageId)
		events, err = e.transition.ApplyConversion(game, play, outcome)
		if err != nil {
			return genericFailureText, e.failTransition(ctx, game, err)
		}
		text := conversionText(game, play, outcome)
		return text, e.afterTransition(ctx, game, text, events)

	default:
		return genericFailureText, fmt.Errorf("unhandled action kind: %s", action)
	}
}

// failTransition marks the game errored without touching the live
// snapshot and surfaces a diagnosis to the operator.
func (e *Engine) failTransition(ctx context.Context, game *entities.Game, cause error) error {
	logging.Error("transition failed",
		zap.String("thread", game.Thread),
		zap.Error(cause),
	)
	game.Errored = true
	if err := e.store.PutGame(ctx, *game); err != nil {
		logging.Error("failed to persist error flag", zap.String("thread", game.Thread), zap.Error(err))
	}
	summary := renderOperatorSummary(game, e.links)
	if err := e.alerter.Alert(ctx, "Game errored: "+game.Thread, summary); err != nil {
		logging.Error("failed to alert operator", zap.String("thread", game.Thread), zap.Error(err))
	}
	return cause
}

// afterTransition sends the next outbound prompt and fans out
// notifications for anything notable the play produced.
func (e *Engine) afterTransition(ctx context.Context, game *entities.Game, text string, events []Event) error {
	if err := e.announce(ctx, game, text); err != nil {
		return err
	}
	for _, event := range events {
		if err := e.notifier.GameEvent(ctx, game, event); err != nil {
			logging.Error("failed to notify event",
				zap.String("thread", game.Thread),
				zap.Error(err),
			)
		}
	}
	return nil
}

// announce publishes the prompt for the new waiting descriptor and
// stamps its message id as the correlation id replies must match.
func (e *Engine) announce(ctx context.Context, game *entities.Game, lead string) error {
	status := &game.Status
	subject := fmt.Sprintf("%s vs %s", game.Away.Name, game.Home.Name)

	var body string
	embedded := &Context{Action: status.Waiting.Action}

	switch status.Waiting.Action {
	case entities.ActionCoin:
		body = lead

	case entities.ActionDefer:
		body = fmt.Sprintf("%s %s, do you want to **receive** or **defer**?",
			lead, coachString(game, status.Waiting.On))

	case entities.ActionKickoff:
		body = fmt.Sprintf("%s %s, how do you want to kick off? %s",
			lead, coachString(game, status.Waiting.On), suggestedPlays(game))

	case entities.ActionPlay:
		body = fmt.Sprintf("%s %s %s, what's your call? %s",
			lead, currentPlayString(game), coachString(game, status.Waiting.On), suggestedPlays(game))

	case entities.ActionConversion:
		body = fmt.Sprintf("%s %s, %s?",
			lead, coachString(game, status.Waiting.On), suggestedPlays(game))

	case entities.ActionDefense:
		body = fmt.Sprintf("%s\n\nReply with a number between **%d** and **%d**, inclusive.",
			currentPlayString(game), e.cfg.DefenseNumberMin, e.cfg.DefenseNumberMax)
		messageId, err := e.gateway.SendPrivateMessage(
			ctx,
			game.Team(status.Waiting.On).Coaches,
			subject,
			Embed(body, embedded),
		)
		if err != nil {
			return fmt.Errorf("failed to send defensive number message: %w", err)
		}
		status.Waiting.MessageId = messageId
		logging.Debug("defensive number sent", zap.String("waiting_id", messageId))
		return nil

	case entities.ActionEnd:
		body = finalText(game)
		embedded = nil

	default:
		return fmt.Errorf("cannot announce action kind: %s", status.Waiting.Action)
	}

	messageId, err := e.gateway.PostReply(ctx, game.Thread, Embed(strings.TrimSpace(body), embedded))
	if err != nil {
		return fmt.Errorf("failed to post game comment: %w", err)
	}
	if status.Waiting.Action != entities.ActionEnd {
		status.Waiting.MessageId = messageId
		logging.Debug("game comment sent", zap.String("waiting_id", messageId))
	}
	return nil
}

// persistAndPublish writes the aggregate and re-renders the external
// projection. The dirty flag is cleared only once both have succeeded;
// a publish failure leaves the persisted state of record intact and is
// retried on the next update.
func (e *Engine) persistAndPublish(ctx context.Context, game *entities.Game) error {
	if err := e.store.PutGame(ctx, *game); err != nil {
		return fmt.Errorf("failed to persist game %s: %w", game.Thread, err)
	}

	schedule, err := e.store.GetSchedule(ctx, game.Thread)
	if err != nil {
		logging.Debug("no schedule for game", zap.String("thread", game.Thread))
	}

	if err := e.gateway.EditThread(ctx, game.Thread, RenderGame(game, schedule)); err != nil {
		logging.Error("failed to republish game thread",
			zap.String("thread", game.Thread),
			zap.Error(err),
		)
		return nil
	}

	game.Dirty = false
	if err := e.store.PutGame(ctx, *game); err != nil {
		game.Dirty = true
		return fmt.Errorf("failed to persist game %s: %w", game.Thread, err)
	}
	return nil
}

// KickGame is the operator recovery path: restore an archived snapshot,
// clear the error flag and re-prompt from the restored state.
func (e *Engine) KickGame(ctx context.Context, threadId string, index int) (string, error) {
	lock := e.lockFor(threadId)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.store.GetGame(ctx, threadId)
	if err != nil {
		return genericFailureText, fmt.Errorf("failed to load game %s: %w", threadId, err)
	}

	if err := RollbackStatus(&game, index); err != nil {
		return fmt.Sprintf("There is no history entry %d for this game.", index), nil
	}
	logging.Info("game rolled back",
		zap.String("thread", threadId),
		zap.Int("index", index),
	)

	if err := e.announce(ctx, &game, "The game has been restored to an earlier state."); err != nil {
		return genericFailureText, err
	}
	if err := e.persistAndPublish(ctx, &game); err != nil {
		return genericFailureText, err
	}
	return fmt.Sprintf("Game restored. %s", WaitingOnString(&game)), nil
}

func playResultText(game *entities.Game, play entities.PlayKind, outcome entities.Outcome) string {
	offense := game.Team(game.Status.Possession).Name
	switch outcome.Result {
	case entities.ResultTouchdown:
		return fmt.Sprintf("Touchdown %s!", offense)
	case entities.ResultTurnoverTouchdown:
		return fmt.Sprintf("Turnover returned all the way. Touchdown %s!", offense)
	case entities.ResultTurnover:
		if play == entities.PlayPass {
			return fmt.Sprintf("Intercepted! %s ball.", offense)
		}
		return fmt.Sprintf("Fumble! %s ball.", offense)
	case entities.ResultTurnoverOnDowns:
		return fmt.Sprintf("Turnover on downs. %s ball.", offense)
	case entities.ResultPunt, entities.ResultTouchback:
		return fmt.Sprintf("Punt. %s ball.", offense)
	case entities.ResultFieldGoal:
		return "The field goal is good!"
	case entities.ResultFieldGoalMiss:
		return fmt.Sprintf("The field goal is no good. %s ball.", offense)
	case entities.ResultSafety:
		return fmt.Sprintf("Safety! Two points %s.", game.Team(game.Status.Possession.Negate()).Name)
	default:
		if outcome.Yards < 0 {
			return fmt.Sprintf("%s for a loss of %d.", capitalize(play.String()), -outcome.Yards)
		}
		return fmt.Sprintf("%s for %d yards.", capitalize(play.String()), outcome.Yards)
	}
}

func conversionText(game *entities.Game, play entities.PlayKind, outcome entities.Outcome) string {
	team := game.Team(game.Status.Possession).Name
	good := outcome.Result == entities.ResultKickGood
	if play == entities.PlayTwoPoint {
		if good {
			return fmt.Sprintf("The %s two-point conversion is good!", team)
		}
		return fmt.Sprintf("The %s two-point conversion fails.", team)
	}
	if good {
		return fmt.Sprintf("The %s PAT is good.", team)
	}
	return fmt.Sprintf("The %s PAT is no good.", team)
}

func finalText(game *entities.Game) string {
	home := game.Status.Home.Points
	away := game.Status.Away.Points
	line := fmt.Sprintf("%s %d - %s %d", game.Away.Name, away, game.Home.Name, home)
	if game.Winner == "" {
		return fmt.Sprintf("That's the game, it ends in a tie. Final: %s", line)
	}
	return fmt.Sprintf("That's the game! %s wins. Final: %s", game.Winner, line)
}
