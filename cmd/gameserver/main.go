package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/l2j-emu/aegis/internal/ai"
	"github.com/l2j-emu/aegis/internal/config"
	"github.com/l2j-emu/aegis/internal/data"
	"github.com/l2j-emu/aegis/internal/db"
	"github.com/l2j-emu/aegis/internal/game/combat"
	"github.com/l2j-emu/aegis/internal/game/skill"
	"github.com/l2j-emu/aegis/internal/gameserver"
	"github.com/l2j-emu/aegis/internal/gameserver/serverpackets"
	"github.com/l2j-emu/aegis/internal/gslistener"
	"github.com/l2j-emu/aegis/internal/login"
	"github.com/l2j-emu/aegis/internal/model"
	"github.com/l2j-emu/aegis/internal/spawn"
	"github.com/l2j-emu/aegis/internal/world"
)

const (
	LoginConfigPath = "config/loginserver.yaml"
	GameConfigPath  = "config/gameserver.yaml"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configs FIRST to determine log level
	loginCfgPath := LoginConfigPath
	if p := os.Getenv("LA2GO_LOGIN_CONFIG"); p != "" {
		loginCfgPath = p
	}
	loginCfg, err := config.LoadLoginServer(loginCfgPath)
	if err != nil {
		return fmt.Errorf("loading login config: %w", err)
	}

	// Configure slog based on config.LogLevel
	logLevel := parseLogLevel(loginCfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("la2go server starting", "log_level", loginCfg.LogLevel)

	gameCfgPath := GameConfigPath
	if p := os.Getenv("LA2GO_GAME_CONFIG"); p != "" {
		gameCfgPath = p
	}
	gameCfg, err := config.LoadGameServer(gameCfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	slog.Info("configs loaded",
		"login_bind", loginCfg.BindAddress,
		"login_port", loginCfg.Port,
		"game_bind", gameCfg.BindAddress,
		"game_port", gameCfg.Port)

	// Connect to database
	database, err := db.New(ctx, loginCfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, loginCfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// Load player templates
	slog.Info("loading player templates")
	data.InitStatBonuses()
	if err := data.LoadPlayerTemplates(); err != nil {
		return fmt.Errorf("loading player templates: %w", err)
	}

	// Load skill data
	if err := data.LoadSkills(); err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	if err := data.LoadSkillTrees(); err != nil {
		return fmt.Errorf("loading skill trees: %w", err)
	}

	// Load NPC templates
	if err := data.LoadNpcTemplates(); err != nil {
		return fmt.Errorf("loading NPC templates: %w", err)
	}

	// Load item templates
	if err := data.LoadItemTemplates(); err != nil {
		return fmt.Errorf("loading item templates: %w", err)
	}

	// Load spawns
	if err := data.LoadSpawns(); err != nil {
		return fmt.Errorf("loading spawns: %w", err)
	}

	// Load zones
	if err := data.LoadZones(); err != nil {
		return fmt.Errorf("loading zones: %w", err)
	}

	// Initialize World Grid
	worldInstance := world.Instance()
	slog.Info("world initialized", "regions", worldInstance.RegionCount())

	// Create repositories
	npcRepo := spawn.NewDataNpcRepo()
	spawnRepo := spawn.NewDataSpawnRepo()
	charRepo := db.NewCharacterRepository(database.Pool())
	itemRepo := db.NewItemRepository(database.Pool())
	skillRepo := db.NewSkillRepository(database.Pool())
	persister := db.NewPlayerPersistenceService(database.Pool(), charRepo, itemRepo, skillRepo)

	// Create GameServer table
	gsTable := gameserver.NewGameServerTable(database)
	slog.Info("GameServer table initialized")

	// Create login server (clients on :2106)
	loginServer, err := login.NewServer(loginCfg, database)
	if err != nil {
		return fmt.Errorf("creating login server: %w", err)
	}

	// Create gslistener server (GameServers on :9013)
	gsListener, err := gslistener.NewServer(loginCfg, database, gsTable, loginServer.SessionManager())
	if err != nil {
		return fmt.Errorf("creating gslistener server: %w", err)
	}

	// Create game server (game clients on :7777)
	gameServer, err := gameserver.NewServer(gameCfg, loginServer.SessionManager(), charRepo, persister)
	if err != nil {
		return fmt.Errorf("creating game server: %w", err)
	}

	// Run all servers + AI/visibility/respawn managers in parallel
	g, gctx := errgroup.WithContext(ctx)

	// Create AI tick manager
	aiMgr := ai.NewTickManager()
	g.Go(func() error {
		slog.Info("starting AI tick manager", "interval", "1s")
		if err := aiMgr.Start(gctx); err != nil {
			return fmt.Errorf("AI tick manager: %w", err)
		}
		return nil
	})

	// Create Visibility manager
	visibilityMgr := world.NewVisibilityManager(worldInstance, 100*time.Millisecond, 200*time.Millisecond)

	// Link VisibilityManager to ClientManager for reverse cache
	gameServer.ClientManager().SetVisibilityManager(visibilityMgr)

	g.Go(func() error {
		slog.Info("starting visibility manager", "interval", "100ms", "maxAge", "200ms")
		if err := visibilityMgr.Start(gctx); err != nil {
			return fmt.Errorf("visibility manager: %w", err)
		}
		return nil
	})

	// Create AttackStanceManager
	attackStanceMgr := combat.NewAttackStanceManager(func(source *model.Player, data []byte, size int) {
		gameServer.ClientManager().BroadcastToVisibleNear(source, data, size)
	})
	combat.AttackStanceMgr = attackStanceMgr

	g.Go(func() error {
		slog.Info("starting attack stance manager", "interval", "1s", "combatTime", "15s")
		attackStanceMgr.Start()
		<-gctx.Done()
		attackStanceMgr.Stop()
		return nil
	})

	// Create CombatManager
	broadcastFunc := func(source *model.Player, data []byte, size int) {
		gameServer.ClientManager().BroadcastToVisibleNear(source, data, size)
	}
	npcBroadcastFunc := func(x, y int32, data []byte, size int) {
		gameServer.ClientManager().BroadcastFromPosition(x, y, data, size)
	}
	combatMgr := combat.NewCombatManager(broadcastFunc, npcBroadcastFunc, &aiManagerAdapter{aiMgr})
	combatMgr.SetRates(&gameCfg.Rates)
	combat.CombatMgr = combatMgr

	// Wire experience reward callback
	sendToPlayerFunc := func(objectID uint32, pktData []byte, size int) {
		if err := gameServer.ClientManager().SendToPlayer(objectID, pktData, size); err != nil {
			slog.Warn("failed to send packet to player", "objectID", objectID, "error", err)
		}
	}
	combatMgr.SetRewardFunc(func(killer *model.Player, npc *model.Npc) {
		combat.RewardExpAndSp(killer, npc, sendToPlayerFunc, broadcastFunc)
	})

	slog.Info("combat manager initialized")

	// Create CastManager
	castMgr := skill.NewCastManager(sendToPlayerFunc, broadcastFunc, nil)
	skill.CastMgr = castMgr
	slog.Info("cast manager initialized")

	// Create Spawn manager
	spawnMgr := spawn.NewManager(npcRepo, spawnRepo, worldInstance, aiMgr)
	if err := spawnMgr.LoadSpawns(ctx); err != nil {
		return fmt.Errorf("loading spawns: %w", err)
	}

	// Create Respawn task manager
	respawnMgr := spawn.NewRespawnTaskManager(spawnMgr)
	g.Go(func() error {
		slog.Info("starting respawn task manager", "interval", "1s")
		if err := respawnMgr.Start(gctx); err != nil {
			return fmt.Errorf("respawn task manager: %w", err)
		}
		return nil
	})

	// Wire NPC death → despawn → respawn flow
	combatMgr.SetNpcDeathFunc(func(npc *model.Npc) {
		npcSpawn := npc.Spawn()

		// Stop AI immediately
		aiMgr.Unregister(npc.ObjectID())

		// Schedule corpse despawn after 8 seconds
		time.AfterFunc(8*time.Second, func() {
			// Remove corpse from world + broadcast DeleteObject
			spawnMgr.DespawnNpc(npc)

			deleteObj := serverpackets.NewDeleteObject(int32(npc.ObjectID()))
			deleteData, err := deleteObj.Write()
			if err != nil {
				slog.Error("failed to write DeleteObject for NPC corpse",
					"npc", npc.Name(),
					"error", err)
				return
			}

			loc := npc.Location()
			npcBroadcastFunc(loc.X, loc.Y, deleteData, len(deleteData))

			slog.Info("NPC corpse despawned",
				"objectID", npc.ObjectID(),
				"name", npc.Name())

			// Schedule respawn
			if npcSpawn != nil {
				delay := npcSpawn.RespawnDelay()
				if rnd := npcSpawn.RespawnRand(); rnd > 0 {
					delay += rnd
				}
				respawnMgr.ScheduleRespawn(npcSpawn, delay)
			}
		})
	})

	// Spawn all NPCs from data
	if err := spawnMgr.SpawnAll(ctx); err != nil {
		slog.Warn("failed to spawn all NPCs", "error", err)
	}

	slog.Info("spawn system initialized",
		"spawns_loaded", spawnMgr.SpawnCount(),
		"world_objects", worldInstance.ObjectCount())

	g.Go(func() error {
		slog.Info("starting login server", "port", loginCfg.Port)
		if err := loginServer.Run(gctx); err != nil {
			return fmt.Errorf("login server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("starting gslistener server", "port", loginCfg.GSListenPort)
		if err := gsListener.Run(gctx); err != nil {
			return fmt.Errorf("gslistener server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("starting game server", "port", gameCfg.Port)
		if err := gameServer.Run(gctx); err != nil {
			return fmt.Errorf("game server: %w", err)
		}
		return nil
	})

	// Wait for all servers to finish
	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// aiManagerAdapter adapts ai.TickManager to combat.AIManagerInterface.
type aiManagerAdapter struct {
	mgr *ai.TickManager
}

func (a *aiManagerAdapter) GetController(objectID uint32) (combat.AIController, error) {
	ctrl, err := a.mgr.GetController(objectID)
	if err != nil {
		return nil, err
	}
	return ctrl, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
