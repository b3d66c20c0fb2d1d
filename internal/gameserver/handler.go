package gameserver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/l2j-emu/aegis/internal/constants"
	skilldata "github.com/l2j-emu/aegis/internal/data"
	"github.com/l2j-emu/aegis/internal/db"
	"github.com/l2j-emu/aegis/internal/game/combat"
	"github.com/l2j-emu/aegis/internal/game/geo"
	"github.com/l2j-emu/aegis/internal/game/skill"
	"github.com/l2j-emu/aegis/internal/game/zone"
	"github.com/l2j-emu/aegis/internal/gameserver/admin"
	"github.com/l2j-emu/aegis/internal/gameserver/clientpackets"
	"github.com/l2j-emu/aegis/internal/gameserver/serverpackets"
	"github.com/l2j-emu/aegis/internal/login"
	"github.com/l2j-emu/aegis/internal/model"
	"github.com/l2j-emu/aegis/internal/protocol"
	"github.com/l2j-emu/aegis/internal/world"
)

// Handler processes game client packets.
type Handler struct {
	sessionManager *login.SessionManager
	clientManager  *ClientManager      // register clients after auth
	charRepo       CharacterRepository // load characters for CharSelectionInfo
	persister      PlayerPersister     // DB persistence
	zoneManager    *zone.Manager       // zone logic
	geoEngine      *geo.Engine         // pathfinding & LOS
	adminHandler   *admin.Handler      // Admin/User commands
}

// CharacterRepository defines interface for loading/creating characters in database.
// Used for dependency injection to keep handler testable.
type CharacterRepository interface {
	LoadByAccountName(ctx context.Context, accountName string) ([]*model.Player, error)
	Create(ctx context.Context, accountName string, p *model.Player) error
	NameExists(ctx context.Context, name string) (bool, error)
	CountByAccountName(ctx context.Context, accountName string) (int, error)
	MarkForDeletion(ctx context.Context, characterID int64, deleteTimerMs int64) error
	RestoreCharacter(ctx context.Context, characterID int64) error
	GetClanID(ctx context.Context, characterID int64) (int64, error)
}

// PlayerPersister defines interface for saving/loading player data.
type PlayerPersister interface {
	SavePlayer(ctx context.Context, player *model.Player) error
	LoadPlayerData(ctx context.Context, charID int64) (*db.PlayerData, error)
}

// writablePacket is any server packet that serializes itself to bytes.
// appendPacket uses this to chain several packets into one send buffer
// without each call site repeating its own copy/bounds-check boilerplate.
type writablePacket interface {
	Write() ([]byte, error)
}

// appendPacket serializes pkt and copies it into buf starting at offset,
// returning the new offset. name is used only for the error message.
func appendPacket(buf []byte, offset int, pkt writablePacket, name string) (int, error) {
	data, err := pkt.Write()
	if err != nil {
		return offset, fmt.Errorf("serializing %s: %w", name, err)
	}
	n := copy(buf[offset:], data)
	if n != len(data) {
		return offset, fmt.Errorf("buffer too small for %s", name)
	}
	return offset + n, nil
}

// ignorePacket is the standard response for a packet this handler chooses
// not to react to — no active player yet, arrived too early, a duplicate of
// an action already in flight. The connection stays open; nothing is sent.
func ignorePacket() (int, bool, error) {
	return 0, true, nil
}

// actionFailedResponse writes a bare ActionFailed packet into buf and keeps
// the connection open. Used when a requested action is rejected (out of
// range, invalid state, bad argument) and the client just needs to know its
// request didn't go through. Serialization failure here is not worth
// tearing down the connection over, so it's swallowed.
func actionFailedResponse(buf []byte) (int, bool, error) {
	data, _ := serverpackets.NewActionFailed().Write()
	return copy(buf, data), true, nil
}

// actionFailedOrError is like actionFailedResponse but surfaces a
// serialization failure as an error instead of swallowing it. keepOpenOnErr
// controls whether the connection survives that failure.
func actionFailedOrError(buf []byte, keepOpenOnErr bool) (int, bool, error) {
	data, err := serverpackets.NewActionFailed().Write()
	if err != nil {
		return 0, keepOpenOnErr, fmt.Errorf("serializing ActionFailed: %w", err)
	}
	return copy(buf, data), true, nil
}

// sendPacket serializes pkt into buf as a handler's entire response,
// keeping the connection open. name is used only for the error message.
func sendPacket(buf []byte, pkt writablePacket, name string) (int, bool, error) {
	data, err := pkt.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing %s: %w", name, err)
	}
	return copy(buf, data), true, nil
}

// sendValidateLocation serializes a ValidateLocation correction packet for
// player, logging and falling back to ignorePacket on a serialize failure
// rather than tearing down the connection over a display-only correction.
func sendValidateLocation(buf []byte, player *model.Player) (int, bool, error) {
	data, err := serverpackets.NewValidateLocation(player).Write()
	if err != nil {
		slog.Error("failed to serialize ValidateLocation", "character", player.Name(), "error", err)
		return ignorePacket()
	}
	return copy(buf, data), true, nil
}

// NewHandler creates a new packet handler for game clients.
func NewHandler(
	sessionManager *login.SessionManager,
	clientManager *ClientManager,
	charRepo CharacterRepository,
	persister PlayerPersister,
	zoneMgr *zone.Manager,
	geoEng *geo.Engine,
	adminHandler *admin.Handler,
) *Handler {
	return &Handler{
		sessionManager: sessionManager,
		clientManager:  clientManager,
		charRepo:       charRepo,
		persister:      persister,
		zoneManager:    zoneMgr,
		geoEngine:      geoEng,
		adminHandler:   adminHandler,
	}
}

// HandlePacket dispatches a decrypted packet to the appropriate handler.
// Writes response into buf. Returns: n — bytes written to buf (0 = nothing to send),
// ok — true if connection stays open (false = close after sending).
func (h *Handler) HandlePacket(
	ctx context.Context,
	client *GameClient,
	data, buf []byte,
) (int, bool, error) {
	if len(data) == 0 {
		return 0, false, fmt.Errorf("empty packet data")
	}

	opcode := data[0]
	body := data[1:]
	state := client.State()

	switch state {
	case ClientStateConnected:
		switch opcode {
		case clientpackets.OpcodeProtocolVersion:
			return handleProtocolVersion(client, body)
		default:
			slog.Warn("invalid opcode for state CONNECTED",
				"opcode", fmt.Sprintf("0x%02X", opcode),
				"client", client.IP())
			return 0, false, nil
		}

	case ClientStateAuthenticated, ClientStateEntering, ClientStateInGame:
		switch opcode {
		case clientpackets.OpcodeAuthLogin:
			return h.handleAuthLogin(ctx, client, body, buf)
		case clientpackets.OpcodeNewCharacter:
			return h.handleNewCharacter(ctx, client, body, buf)
		case clientpackets.OpcodeCharacterCreate:
			return h.handleCharacterCreate(ctx, client, body, buf)
		case clientpackets.OpcodeCharacterDelete:
			return h.handleCharacterDelete(ctx, client, body, buf)
		case clientpackets.OpcodeCharacterRestore:
			return h.handleCharacterRestore(ctx, client, body, buf)
		case clientpackets.OpcodeCharacterSelect:
			return h.handleCharacterSelect(ctx, client, body, buf)
		case clientpackets.OpcodeEnterWorld:
			return h.handleEnterWorld(ctx, client, body, buf)
		case clientpackets.OpcodeMoveToLocation:
			return h.handleMoveToLocation(ctx, client, body, buf)
		case clientpackets.OpcodeCannotMoveAnymore:
			return h.handleCannotMoveAnymore(ctx, client, body, buf)
		case clientpackets.OpcodeValidatePosition:
			return h.handleValidatePosition(ctx, client, body, buf)
		case clientpackets.OpcodeRequestAction:
			return h.handleRequestAction(ctx, client, body, buf)
		case clientpackets.OpcodeAttackRequest:
			return h.handleAttackRequest(ctx, client, body, buf)
		case clientpackets.OpcodeRequestDropItem:
			return h.handleRequestDropItem(ctx, client, body, buf)
		case clientpackets.OpcodeUseItem:
			return h.handleUseItem(ctx, client, body, buf)
		case clientpackets.OpcodeRequestSocialAction:
			return h.handleRequestSocialAction(ctx, client, body, buf)
		case clientpackets.OpcodeRequestItemList:
			return h.handleRequestItemList(ctx, client, body, buf)
		case clientpackets.OpcodeRequestUnEquipItem:
			return h.handleRequestUnEquipItem(ctx, client, body, buf)
		case clientpackets.OpcodeChangeMoveType2:
			return h.handleChangeMoveType2(ctx, client, body, buf)
		case clientpackets.OpcodeChangeWaitType2:
			return h.handleChangeWaitType2(ctx, client, body, buf)
		case clientpackets.OpcodeAppearing:
			return h.handleAppearing(ctx, client, body, buf)
		case clientpackets.OpcodeRequestTargetCanceld:
			return h.handleRequestTargetCanceld(ctx, client, body, buf)
		case clientpackets.OpcodeRequestSkillList:
			return h.handleRequestSkillList(ctx, client, body, buf)
		case clientpackets.OpcodeRequestDestroyItem:
			return h.handleRequestDestroyItem(ctx, client, body, buf)
		case clientpackets.OpcodeStartRotating:
			return h.handleStartRotating(ctx, client, body, buf)
		case clientpackets.OpcodeFinishRotating:
			return h.handleFinishRotating(ctx, client, body, buf)
		case clientpackets.OpcodeLogout:
			return h.handleLogout(ctx, client, body, buf)
		case clientpackets.OpcodeRequestRestart:
			return h.handleRequestRestart(ctx, client, body, buf)
		case clientpackets.OpcodeRequestMagicSkillUse:
			return h.handleRequestMagicSkillUse(ctx, client, body, buf)
		case clientpackets.OpcodeSay2:
			return h.handleSay2(ctx, client, body, buf)
		case clientpackets.OpcodeRequestBypassToServer:
			return h.handleRequestBypassToServer(ctx, client, body, buf)
		// Shortcut packets
		case clientpackets.OpcodeRequestShortCutReg:
			return h.handleRequestShortCutReg(ctx, client, body, buf)
		case clientpackets.OpcodeRequestShortCutDel:
			return h.handleRequestShortCutDel(ctx, client, body, buf)

		// Extended client packets (0xD0 + sub-opcode)
		case clientpackets.OpcodeRequestExPacket:
			return h.handleExtendedPacket(ctx, client, body, buf)
		default:
			slog.Warn("unknown packet opcode",
				"opcode", fmt.Sprintf("0x%02X", opcode),
				"state", state,
				"client", client.IP())
			return ignorePacket()
		}

	default:
		return 0, false, fmt.Errorf("invalid state: %v", state)
	}
}

// handleProtocolVersion processes the ProtocolVersion packet (opcode 0x0E).
func handleProtocolVersion(client *GameClient, data []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseProtocolVersion(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing ProtocolVersion: %w", err)
	}

	if !pkt.IsValid() {
		slog.Warn("invalid protocol version",
			"expected", 0x0106,
			"got", pkt.ProtocolRevision,
			"client", client.IP())
		return 0, false, fmt.Errorf("invalid protocol revision: 0x%04X", pkt.ProtocolRevision)
	}

	slog.Debug("protocol version validated", "client", client.IP())

	// Protocol version is valid, wait for AuthLogin
	// No response packet
	return ignorePacket()
}

// handleAuthLogin processes the AuthLogin packet (opcode 0x08).
func (h *Handler) handleAuthLogin(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseAuthLogin(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing AuthLogin: %w", err)
	}

	// Validate SessionKey with SessionManager (shared with LoginServer)
	// showLicence=false because GameServer doesn't care about license state
	if !h.sessionManager.Validate(pkt.AccountName, pkt.SessionKey, false) {
		slog.Warn("session key validation failed",
			"account", pkt.AccountName,
			"client", client.IP())

		// Send AuthLoginFail packet before closing connection
		failPkt := serverpackets.NewAuthLoginFail(serverpackets.AuthFailReasonAccessDenied)
		failData, writeErr := failPkt.Write()
		if writeErr != nil {
			slog.Error("failed to serialize AuthLoginFail", "error", writeErr)
			return 0, false, fmt.Errorf("invalid session key for account %s", pkt.AccountName)
		}
		n := copy(buf, failData)
		return n, false, fmt.Errorf("invalid session key for account %s", pkt.AccountName)
	}

	// SessionKey is valid, set client state
	client.SetAccountName(pkt.AccountName)
	client.SetSessionKey(&pkt.SessionKey)
	client.SetState(ClientStateAuthenticated)

	// Register client in ClientManager (Phase 4.5 PR4)
	h.clientManager.Register(pkt.AccountName, client)

	slog.Info("client authenticated",
		"account", pkt.AccountName,
		"client", client.IP())

	// Load characters for this account (Phase 4.6)
	// Phase 4.18: Use cached loader to eliminate redundant DB queries
	players, err := client.GetCharacters(pkt.AccountName, func(name string) ([]*model.Player, error) {
		return h.charRepo.LoadByAccountName(ctx, name)
	})
	if err != nil {
		return 0, false, fmt.Errorf("loading characters for account %s: %w", pkt.AccountName, err)
	}

	// Create and send CharSelectionInfo packet
	// SessionID is derived from SessionKey (use PlayOkID1)
	sessionID := pkt.SessionKey.PlayOkID1
	charSelInfo := serverpackets.NewCharSelectionInfoFromPlayers(pkt.AccountName, sessionID, players)

	packetData, err := charSelInfo.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CharSelectionInfo: %w", err)
	}

	// Copy packet data to response buffer
	n := copy(buf, packetData)
	if n != len(packetData) {
		return 0, false, fmt.Errorf("buffer too small: need %d bytes, have %d", len(packetData), len(buf))
	}

	slog.Debug("sent CharSelectionInfo",
		"account", pkt.AccountName,
		"character_count", len(players),
		"packet_size", n)

	return n, true, nil
}

// handleNewCharacter processes the NewCharacter packet (opcode 0x0E in AUTHENTICATED state).
// Client sends this when user clicks "Create" on character selection screen.
// Response: CharTemplates S2C (0x17) with 9 base class templates.
func (h *Handler) handleNewCharacter(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	_, err := clientpackets.ParseNewCharacter(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing NewCharacter: %w", err)
	}

	slog.Debug("sent character templates", "account", client.AccountName())
	return sendPacket(buf, &serverpackets.CharTemplates{}, "CharTemplates")
}

// handleCharacterCreate processes the CharacterCreate packet (opcode 0x0B).
// Client sends this when user creates a new character.
// Response: CharCreateOk (0x19) or CharCreateFail (0x1A).
func (h *Handler) handleCharacterCreate(ctx context.Context, client *GameClient, data []byte, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseCharacterCreate(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing CharacterCreate: %w", err)
	}

	accountName := client.AccountName()

	// Validate name length (1-16 chars)
	nameLen := len([]rune(pkt.Name))
	if nameLen < 1 || nameLen > 16 {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonIncorrectName)
	}

	// Validate name: alphanumeric only
	for _, r := range pkt.Name {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonIncorrectName)
		}
	}

	// Validate class is a base class (occupation level 0)
	if skilldata.ClassLevel(pkt.ClassID) != 0 {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonNotAllowed)
	}

	// Get player template for this class
	tmpl := skilldata.GetTemplate(uint8(pkt.ClassID))
	if tmpl == nil {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonNotAllowed)
	}

	// Validate appearance
	if pkt.Face < 0 || pkt.Face > 2 {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonFailed)
	}
	maxHairStyle := int32(4)
	if pkt.IsFemale {
		maxHairStyle = 6
	}
	if pkt.HairStyle < 0 || pkt.HairStyle > maxHairStyle {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonFailed)
	}
	if pkt.HairColor < 0 || pkt.HairColor > 3 {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonFailed)
	}

	// Check max characters per account (7)
	count, err := h.charRepo.CountByAccountName(ctx, accountName)
	if err != nil {
		slog.Error("counting characters", "account", accountName, "error", err)
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonFailed)
	}
	if count >= 7 {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonTooMany)
	}

	// Check name uniqueness
	exists, err := h.charRepo.NameExists(ctx, pkt.Name)
	if err != nil {
		slog.Error("checking name existence", "name", pkt.Name, "error", err)
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonFailed)
	}
	if exists {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonNameExists)
	}

	// Derive raceID from classID
	classInfo := skilldata.GetClassInfo(pkt.ClassID)
	if classInfo == nil {
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonNotAllowed)
	}
	raceID := classInfo.Race

	// Get spawn location from template
	var spawnX, spawnY, spawnZ int32
	if len(tmpl.CreationPoints) > 0 {
		sp := tmpl.CreationPoints[0]
		spawnX, spawnY, spawnZ = sp.X, sp.Y, sp.Z
	}

	// Create the player model
	objectID := world.IDGenerator().NextPlayerID()
	player, err := model.NewPlayer(objectID, 0, 0, pkt.Name, 1, raceID, pkt.ClassID)
	if err != nil {
		slog.Error("creating player model", "name", pkt.Name, "error", err)
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonFailed)
	}

	// Set appearance
	player.SetIsFemale(pkt.IsFemale)
	player.SetFace(pkt.Face)
	player.SetHairStyle(pkt.HairStyle)
	player.SetHairColor(pkt.HairColor)

	// Set spawn location
	loc := model.NewLocation(spawnX, spawnY, spawnZ, 0)
	player.SetLocation(loc)

	// Set stats from template (level 1)
	hp := int32(tmpl.GetHPMax(1))
	mp := int32(tmpl.GetMPMax(1))
	cp := int32(tmpl.GetCPMax(1))
	player.SetMaxHP(hp)
	player.SetMaxMP(mp)
	player.SetMaxCP(cp)
	player.SetCurrentHP(hp)
	player.SetCurrentMP(mp)
	player.SetCurrentCP(cp)

	// Save to DB
	if err := h.charRepo.Create(ctx, accountName, player); err != nil {
		slog.Error("saving new character to DB", "name", pkt.Name, "account", accountName, "error", err)
		return h.sendCharCreateFail(buf, serverpackets.CharCreateReasonFailed)
	}

	// Invalidate character cache
	client.ClearCharacterCache()

	slog.Info("character created",
		"name", pkt.Name,
		"account", accountName,
		"classID", pkt.ClassID,
		"raceID", raceID,
		"characterID", player.CharacterID())

	// Send CharCreateOk
	return sendPacket(buf, &serverpackets.CharCreateOk{}, "CharCreateOk")
}

// sendCharCreateFail sends a CharCreateFail packet with the given reason.
func (h *Handler) sendCharCreateFail(buf []byte, reason int32) (int, bool, error) {
	pkt := serverpackets.NewCharCreateFail(reason)
	return sendPacket(buf, pkt, "CharCreateFail")
}

// handleCharacterDelete processes the CharacterDelete packet (opcode 0x0C).
// Sets a 7-day delete timer on the character; clan leaders/members are blocked.
func (h *Handler) handleCharacterDelete(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseCharacterDelete(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing CharacterDelete: %w", err)
	}

	accountName := client.AccountName()
	players, err := client.GetCharacters(accountName, func(name string) ([]*model.Player, error) {
		return h.charRepo.LoadByAccountName(ctx, name)
	})
	if err != nil {
		return 0, false, fmt.Errorf("loading characters for delete: %w", err)
	}

	if int(pkt.CharSlot) < 0 || int(pkt.CharSlot) >= len(players) {
		return h.sendCharDeleteFail(buf, serverpackets.CharDeleteReasonFailed)
	}

	player := players[pkt.CharSlot]

	// Check clan membership
	clanID, err := h.charRepo.GetClanID(ctx, player.CharacterID())
	if err != nil {
		slog.Error("checking clan for delete", "characterID", player.CharacterID(), "error", err)
		return h.sendCharDeleteFail(buf, serverpackets.CharDeleteReasonFailed)
	}

	if clanID != 0 {
		return h.sendCharDeleteFail(buf, serverpackets.CharDeleteReasonClanMember)
	}

	// Set 7-day delete timer (7 * 86400 * 1000 ms)
	deleteTime := time.Now().UnixMilli() + 7*86400*1000
	if err := h.charRepo.MarkForDeletion(ctx, player.CharacterID(), deleteTime); err != nil {
		slog.Error("marking character for deletion", "characterID", player.CharacterID(), "error", err)
		return h.sendCharDeleteFail(buf, serverpackets.CharDeleteReasonFailed)
	}

	// Clear character cache
	client.ClearCharacterCache()

	slog.Info("character marked for deletion",
		"name", player.Name(),
		"account", accountName,
		"characterID", player.CharacterID())

	// Send CharDeleteOk
	okPkt := &serverpackets.CharDeleteOk{}
	okData, err := okPkt.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CharDeleteOk: %w", err)
	}
	n := copy(buf, okData)

	// Send updated character list
	updatedPlayers, err := h.charRepo.LoadByAccountName(ctx, accountName)
	if err != nil {
		slog.Error("loading characters after delete", "account", accountName, "error", err)
		return n, true, nil
	}

	sessionKey := client.SessionKey()
	sessionID := int32(0)
	if sessionKey != nil {
		sessionID = sessionKey.PlayOkID1
	}
	charList := serverpackets.NewCharSelectionInfoFromPlayers(accountName, sessionID, updatedPlayers)
	charData, err := charList.Write()
	if err != nil {
		slog.Error("serializing CharSelectionInfo after delete", "error", err)
		return n, true, nil
	}
	n2 := copy(buf[n:], charData)

	return n + n2, true, nil
}

// sendCharDeleteFail sends a CharDeleteFail packet with the given reason.
func (h *Handler) sendCharDeleteFail(buf []byte, reason int32) (int, bool, error) {
	pkt := serverpackets.NewCharDeleteFail(reason)
	return sendPacket(buf, pkt, "CharDeleteFail")
}

// handleCharacterRestore processes the CharacterRestore packet (opcode 0x62).
// Cancels pending deletion by clearing the delete timer.
func (h *Handler) handleCharacterRestore(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseCharacterRestore(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing CharacterRestore: %w", err)
	}

	accountName := client.AccountName()
	players, err := client.GetCharacters(accountName, func(name string) ([]*model.Player, error) {
		return h.charRepo.LoadByAccountName(ctx, name)
	})
	if err != nil {
		return 0, false, fmt.Errorf("loading characters for restore: %w", err)
	}

	if int(pkt.CharSlot) < 0 || int(pkt.CharSlot) >= len(players) {
		return 0, false, fmt.Errorf("invalid character slot for restore: %d", pkt.CharSlot)
	}

	player := players[pkt.CharSlot]

	if err := h.charRepo.RestoreCharacter(ctx, player.CharacterID()); err != nil {
		slog.Error("restoring character", "characterID", player.CharacterID(), "error", err)
		return 0, false, fmt.Errorf("restoring character: %w", err)
	}

	// Clear character cache
	client.ClearCharacterCache()

	slog.Info("character restored",
		"name", player.Name(),
		"account", accountName,
		"characterID", player.CharacterID())

	// Send updated character list
	updatedPlayers, err := h.charRepo.LoadByAccountName(ctx, accountName)
	if err != nil {
		return 0, false, fmt.Errorf("loading characters after restore: %w", err)
	}

	sessionKey := client.SessionKey()
	sessionID := int32(0)
	if sessionKey != nil {
		sessionID = sessionKey.PlayOkID1
	}
	charList := serverpackets.NewCharSelectionInfoFromPlayers(accountName, sessionID, updatedPlayers)
	return sendPacket(buf, charList, "CharSelectionInfo after restore")
}

// handleCharacterSelect processes the CharacterSelect packet (opcode 0x0D).
// Client sends this when user selects a character from the character list.
// Response: CharSelected packet with character data.
func (h *Handler) handleCharacterSelect(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseCharacterSelect(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing CharacterSelect: %w", err)
	}

	// Validate character slot (0-7)
	if pkt.CharSlot < 0 || pkt.CharSlot > 7 {
		slog.Warn("invalid character slot",
			"slot", pkt.CharSlot,
			"account", client.AccountName(),
			"client", client.IP())
		return 0, false, fmt.Errorf("invalid character slot: %d", pkt.CharSlot)
	}

	// Load characters for this account
	// Uses the cached loader (2nd call — cache hit expected)
	accountName := client.AccountName()
	players, err := client.GetCharacters(accountName, func(name string) ([]*model.Player, error) {
		return h.charRepo.LoadByAccountName(ctx, name)
	})
	if err != nil {
		return 0, false, fmt.Errorf("loading characters for account %s: %w", accountName, err)
	}

	// Validate slot index
	if int(pkt.CharSlot) >= len(players) {
		slog.Warn("character slot out of range",
			"slot", pkt.CharSlot,
			"character_count", len(players),
			"account", client.AccountName(),
			"client", client.IP())
		return 0, false, fmt.Errorf("character slot %d out of range (have %d characters)", pkt.CharSlot, len(players))
	}

	// Get selected character
	player := players[pkt.CharSlot]

	// Get PlayOkID1 from SessionKey for CharSelected packet
	sessionKey := client.SessionKey()
	if sessionKey == nil {
		slog.Error("no session key for authenticated client",
			"account", client.AccountName(),
			"client", client.IP())
		return 0, false, fmt.Errorf("missing session key")
	}

	// Store selected character slot
	client.SetSelectedCharacter(pkt.CharSlot)

	// Send CharSelected packet (Phase 4.17.1)
	charSelected := serverpackets.NewCharSelected(player, sessionKey.PlayOkID1)
	charSelectedData, err := charSelected.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CharSelected: %w", err)
	}

	n := copy(buf, charSelectedData)
	if n != len(charSelectedData) {
		return 0, false, fmt.Errorf("buffer too small for CharSelected")
	}

	// Transition to ENTERING state (Phase 4.17.2)
	client.SetState(ClientStateEntering)

	slog.Info("character selected",
		"account", client.AccountName(),
		"character", player.Name(),
		"slot", pkt.CharSlot,
		"level", player.Level(),
		"client", client.IP())

	return n, true, nil
}

// handleEnterWorld processes the EnterWorld packet (opcode 0x03).
// Client sends this after CharacterSelect to spawn in the world.
func (h *Handler) handleEnterWorld(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	_, err := clientpackets.ParseEnterWorld(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing EnterWorld: %w", err)
	}

	// Verify character was selected
	charSlot := client.SelectedCharacter()
	if charSlot < 0 {
		slog.Warn("EnterWorld without character selection",
			"account", client.AccountName(),
			"client", client.IP())
		return 0, false, fmt.Errorf("no character selected")
	}

	// Load characters for this account
	// Uses the cached loader (3rd call — cache hit expected)
	accountName := client.AccountName()
	players, err := client.GetCharacters(accountName, func(name string) ([]*model.Player, error) {
		return h.charRepo.LoadByAccountName(ctx, name)
	})
	if err != nil {
		return 0, false, fmt.Errorf("loading characters for account %s: %w", accountName, err)
	}

	// Validate slot index
	if int(charSlot) >= len(players) {
		slog.Warn("character slot out of range",
			"slot", charSlot,
			"character_count", len(players),
			"account", client.AccountName(),
			"client", client.IP())
		return 0, false, fmt.Errorf("character slot %d out of range (have %d characters)", charSlot, len(players))
	}

	// Get selected character
	player := players[charSlot]

	// Cache player in GameClient (Phase 4.8 part 2)
	client.SetActivePlayer(player)

	// Phase 5.9.5: Apply auto-get skills for current level
	autoSkills := skilldata.GetAutoGetSkills(player.ClassID(), player.Level())
	for _, sl := range autoSkills {
		isPassive := false
		if tmpl := skilldata.GetSkillTemplate(sl.SkillID, sl.SkillLevel); tmpl != nil {
			isPassive = tmpl.IsPassive()
		}
		player.AddSkill(sl.SkillID, sl.SkillLevel, isPassive)
	}

	// Phase 6.0: Load items, skills, recipes and hennas from DB
	playerData, err := h.persister.LoadPlayerData(ctx, player.CharacterID())
	if err != nil {
		slog.Error("load player data",
			"characterID", player.CharacterID(),
			"err", err)
		// Continue without — not fatal
	}

	// Restore skills from DB (override auto-get with saved levels)
	if playerData == nil {
		playerData = &db.PlayerData{}
	}
	for _, si := range playerData.Skills {
		isPassive := false
		if tmpl := skilldata.GetSkillTemplate(si.SkillID, si.Level); tmpl != nil {
			isPassive = tmpl.IsPassive()
		}
		player.AddSkill(si.SkillID, si.Level, isPassive)
	}

	// Restore items to inventory
	for _, row := range playerData.Items {
		tmpl := db.ItemDefToTemplate(row.ItemTypeID)
		if tmpl == nil {
			slog.Warn("item template not found, skipping",
				"itemTypeID", row.ItemTypeID,
				"characterID", player.CharacterID())
			continue
		}
		item, itemErr := model.NewItem(uint32(row.ItemID), row.ItemTypeID, player.CharacterID(), row.Count, tmpl)
		if itemErr != nil {
			slog.Error("restore item failed",
				"itemTypeID", row.ItemTypeID,
				"error", itemErr)
			continue
		}
		if row.Enchant > 0 {
			if enchErr := item.SetEnchant(row.Enchant); enchErr != nil {
				slog.Error("set enchant failed",
					"itemTypeID", row.ItemTypeID,
					"error", enchErr)
			}
		}
		if addErr := player.Inventory().AddItem(item); addErr != nil {
			slog.Error("add item to inventory failed",
				"itemTypeID", row.ItemTypeID,
				"error", addErr)
			continue
		}
		if model.ItemLocation(row.Location) == model.ItemLocationPaperdoll && row.SlotID >= 0 {
			if equipErr := player.Inventory().EquipItem(item, row.SlotID); equipErr != nil {
				slog.Error("equip item failed",
					"itemTypeID", row.ItemTypeID,
					"slot", row.SlotID,
					"error", equipErr)
			}
		}
	}

	// Register player in World Grid (Phase 4.9)
	if err := world.Instance().AddObject(player.WorldObject); err != nil {
		return 0, false, fmt.Errorf("adding player to world: %w", err)
	}

	// Update client state
	client.SetState(ClientStateInGame)

	slog.Info("player entering world",
		"account", client.AccountName(),
		"character", player.Name(),
		"level", player.Level(),
		"client", client.IP())

	// Spawn packets must go out in this order: UserInfo first (it's what
	// actually spawns the character client-side), then the rest of the
	// client's initial state.
	spawnPackets := []struct {
		pkt  writablePacket
		name string
	}{
		{serverpackets.NewUserInfo(player), "UserInfo"},
		{serverpackets.NewStatusUpdate(player), "StatusUpdate"},
		{serverpackets.NewInventoryItemList(player.Inventory().GetItems()), "InventoryItemList"},
		{serverpackets.NewShortCutInit(player.GetShortcuts()), "ShortCutInit"},
		{serverpackets.NewSkillList(player.Skills()), "SkillList"},
	}

	var totalBytes int
	for _, sp := range spawnPackets {
		totalBytes, err = appendPacket(buf, totalBytes, sp.pkt, sp.name)
		if err != nil {
			return 0, false, err
		}
	}

	// SkillCoolTime currently sends an empty list (cooldowns aren't persisted
	// yet) — a failure here shouldn't abort the rest of the spawn sequence.
	if n, err := appendPacket(buf, totalBytes, &serverpackets.SkillCoolTime{}, "SkillCoolTime"); err != nil {
		slog.Error("serializing SkillCoolTime", "error", err)
	} else {
		totalBytes = n
	}

	slog.Debug("sent spawn packets",
		"character", player.Name(),
		"total_bytes", totalBytes,
		"packets", "UserInfo+StatusUpdate+Inventory+Shortcuts+Skills+CoolTime")

	// Broadcast CharInfo to visible players (Phase 4.8 part 2)
	// This makes the spawned player visible to others
	charInfo := serverpackets.NewCharInfo(player)
	charInfoData, err := charInfo.Write()
	if err != nil {
		slog.Error("failed to serialize CharInfo",
			"character", player.Name(),
			"error", err)
		// Continue even if broadcast failed (player still spawns)
	} else {
		// Broadcast to all visible players
		visibleCount := h.clientManager.BroadcastToVisible(player, charInfoData, len(charInfoData))
		if visibleCount > 0 {
			slog.Debug("broadcasted CharInfo",
				"character", player.Name(),
				"visible_players", visibleCount)
		}
	}

	// Send CharInfo + NpcInfo TO client for all visible objects (Phase 4.9 Part 2 + Phase 4.10)
	// This makes other players and NPCs visible to the spawned player
	if err := h.sendVisibleObjectsInfo(client, player); err != nil {
		slog.Error("failed to send info for visible objects",
			"character", player.Name(),
			"error", err)
		// Continue even if some packets failed
	}

	// NpcInfo + ItemOnGround already sent by sendVisibleObjectsInfo above.

	return totalBytes, true, nil
}

// handleMoveToLocation processes the MoveToLocation packet (opcode 0x01).
// Client sends this when player clicks on ground to move.
func (h *Handler) handleMoveToLocation(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseMoveToLocation(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing MoveToLocation: %w", err)
	}

	// Verify character is in game
	if client.State() != ClientStateInGame {
		slog.Warn("MoveToLocation before entering world",
			"account", client.AccountName(),
			"client", client.IP())
		return ignorePacket() // Ignore silently
	}

	// Get cached player (Phase 4.18 Opt 3)
	player := client.ActivePlayer()
	if player == nil {
		slog.Warn("MoveToLocation without active player",
			"account", client.AccountName(),
			"client", client.IP())
		return 0, false, fmt.Errorf("no active player for account %s", client.AccountName())
	}

	// Phase 5.1: Validate movement (distance, Z-bounds)
	if err := ValidateMoveToLocation(player, pkt.TargetX, pkt.TargetY, pkt.TargetZ); err != nil {
		slog.Warn("movement validation failed",
			"character", player.Name(),
			"from", fmt.Sprintf("(%d,%d,%d)", pkt.OriginX, pkt.OriginY, pkt.OriginZ),
			"to", fmt.Sprintf("(%d,%d,%d)", pkt.TargetX, pkt.TargetY, pkt.TargetZ),
			"error", err)

		// Send ValidateLocation (force client to use server position)
		validateLoc := serverpackets.NewValidateLocation(player)
		validateData, err := validateLoc.Write()
		if err != nil {
			slog.Error("failed to serialize ValidateLocation",
				"character", player.Name(),
				"error", err)
			return ignorePacket() // Continue even if it failed
		}
		n := copy(buf, validateData)

		// Broadcast StopMove to visible players (Phase 5.1)
		stopMove := serverpackets.NewStopMove(player)
		stopData, err := stopMove.Write()
		if err != nil {
			slog.Error("failed to serialize StopMove",
				"character", player.Name(),
				"error", err)
		} else {
			// Phase 5.1: Use BroadcastToVisibleNear (LOD optimization, -90% packets)
			h.clientManager.BroadcastToVisibleNear(player, stopData, len(stopData))
		}

		return n, true, nil // Connection stays open
	}

	// Geodata validation — check for walls/obstacles
	targetX, targetY, targetZ := pkt.TargetX, pkt.TargetY, pkt.TargetZ
	currentLoc := player.Location()

	geoResult := ValidateMoveWithGeo(h.geoEngine, currentLoc.X, currentLoc.Y, currentLoc.Z,
		targetX, targetY, targetZ)

	if geoResult.Blocked && geoResult.Path != nil && len(geoResult.Path) > 1 {
		// Direct path blocked but A* found alternative — use first waypoint
		targetX = geoResult.Path[1].X
		targetY = geoResult.Path[1].Y
		targetZ = geoResult.Path[1].Z

		slog.Debug("movement rerouted via geodata",
			"character", player.Name(),
			"original", fmt.Sprintf("(%d,%d,%d)", pkt.TargetX, pkt.TargetY, pkt.TargetZ),
			"waypoint", fmt.Sprintf("(%d,%d,%d)", targetX, targetY, targetZ))
	} else if geoResult.Blocked && geoResult.Path == nil {
		// No path found — stop player at current position
		slog.Debug("movement blocked by geodata (no path)",
			"character", player.Name(),
			"target", fmt.Sprintf("(%d,%d,%d)", pkt.TargetX, pkt.TargetY, pkt.TargetZ))

		stopMove := serverpackets.NewStopMove(player)
		stopData, err := stopMove.Write()
		if err != nil {
			slog.Error("failed to serialize StopMove",
				"character", player.Name(),
				"error", err)
		} else {
			h.clientManager.BroadcastToVisibleNear(player, stopData, len(stopData))
		}
		return ignorePacket()
	} else {
		// Direct movement OK — correct Z from geodata
		targetZ = geoResult.CorrectedZ
	}

	// Update player location (validated)
	newLoc := model.NewLocation(targetX, targetY, targetZ, player.Location().Heading)
	player.SetLocation(newLoc)

	// Phase 5.1: Track last server-validated position
	player.Movement().SetLastServerPosition(targetX, targetY, targetZ)

	slog.Debug("player moving",
		"character", player.Name(),
		"from", fmt.Sprintf("(%d,%d,%d)", pkt.OriginX, pkt.OriginY, pkt.OriginZ),
		"to", fmt.Sprintf("(%d,%d,%d)", targetX, targetY, targetZ))

	// Broadcast movement to visible players
	movePkt := serverpackets.NewCharMoveToLocation(player, targetX, targetY, targetZ)
	moveData, err := movePkt.Write()
	if err != nil {
		slog.Error("failed to serialize CharMoveToLocation",
			"character", player.Name(),
			"error", err)
		// Continue even if broadcast failed
	} else {
		// Phase 5.1: Use BroadcastToVisibleNear (LOD optimization, -90% packets)
		visibleCount := h.clientManager.BroadcastToVisibleNear(player, moveData, len(moveData))
		if visibleCount > 0 {
			slog.Debug("broadcasted movement",
				"character", player.Name(),
				"visible_players", visibleCount)
		}
	}

	// No response packet to client (movement is client-predicted)
	return ignorePacket()
}

// handleCannotMoveAnymore processes CannotMoveAnymore packet (C2S opcode 0x36).
// Client sends this when it hits a wall or reaches destination and movement is blocked.
// Server updates player position to the blocked location and corrects Z via geodata.
//
// Java reference: CannotMoveAnymore.java → player.getAI().notifyAction(ARRIVED_BLOCKED, loc)
func (h *Handler) handleCannotMoveAnymore(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseCannotMoveAnymore(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing CannotMoveAnymore: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket()
	}

	// Correct Z via geodata if available
	correctedZ := pkt.Z
	if h.geoEngine != nil && h.geoEngine.IsLoaded() {
		correctedZ = h.geoEngine.GetHeight(pkt.X, pkt.Y, pkt.Z)
	}

	// Update player position to the blocked location
	newLoc := model.NewLocation(pkt.X, pkt.Y, correctedZ, uint16(pkt.Heading))
	player.SetLocation(newLoc)

	slog.Debug("player movement blocked",
		"character", player.Name(),
		"pos", fmt.Sprintf("(%d,%d,%d)", pkt.X, pkt.Y, correctedZ),
		"heading", pkt.Heading)

	// Broadcast StopMove to visible players
	stopMove := serverpackets.NewStopMove(player)
	stopData, err := stopMove.Write()
	if err != nil {
		slog.Error("failed to serialize StopMove",
			"character", player.Name(),
			"error", err)
	} else {
		h.clientManager.BroadcastToVisibleNear(player, stopData, len(stopData))
	}

	return ignorePacket()
}

// sendVisibleObjectsInfo sends CharInfo + NpcInfo + ItemOnGround packets TO client for all visible objects.
// Encrypts each recipient's packet in parallel.
// Phase 7.0: Sends via client.Send() (writePump batches and writes).
//
// Uses ForEachVisibleObjectCached for efficient visibility queries.
// Handles Players (CharInfo), NPCs (NpcInfo), and Items (ItemOnGround).
//
// Thread-safety: Encryption is safe after authentication (firstPacket=false).
const maxConcurrent = 20

func (h *Handler) sendVisibleObjectsInfo(client *GameClient, player *model.Player) error {
	// Thread-safe packet collection
	var (
		mu                               sync.Mutex
		lastErr                          error
		wg                               sync.WaitGroup
		playerCount, npcCount, itemCount int
		encryptedPackets                 = make([][]byte, 0, 450)
	)

	// Semaphore to limit concurrent goroutines (avoid goroutine explosion)
	semaphore := make(chan struct{}, maxConcurrent)

	writePool := h.clientManager.writePool

	world.ForEachVisibleObjectCached(player, func(obj *model.WorldObject) bool {
		objectID := obj.ObjectID()

		// Skip self
		if constants.IsPlayerObjectID(objectID) {
			otherClient := h.clientManager.GetClientByObjectID(objectID)
			if otherClient != nil {
				if otherPlayer := otherClient.ActivePlayer(); otherPlayer != nil {
					if otherPlayer.CharacterID() == player.CharacterID() {
						return true // Don't send CharInfo for self
					}
				}
			}
		}

		semaphore <- struct{}{} // Acquire
		wg.Go(func() {
			defer func() { <-semaphore }() // Release

			// Serialize packet based on object type
			var payloadData []byte
			var packetType string
			var err error

			if constants.IsPlayerObjectID(obj.ObjectID()) {
				// This is a Player — send CharInfo
				otherClient := h.clientManager.GetClientByObjectID(obj.ObjectID())
				if otherClient == nil {
					return // Player offline, skip
				}

				otherPlayer := otherClient.ActivePlayer()
				if otherPlayer == nil {
					return // Player not in game yet, skip
				}

				charInfoPkt := serverpackets.NewCharInfo(otherPlayer)
				payloadData, err = charInfoPkt.Write()
				packetType = "CharInfo"

				mu.Lock()
				playerCount++
				mu.Unlock()

			} else if constants.IsNpcObjectID(obj.ObjectID()) {
				// This is an NPC — send NpcInfo
				npc, ok := world.Instance().GetNpc(obj.ObjectID())
				if !ok {
					return // NPC not found or despawned, skip
				}

				npcInfoPkt := serverpackets.NewNpcInfo(npc)
				payloadData, err = npcInfoPkt.Write()
				packetType = "NpcInfo"

				mu.Lock()
				npcCount++
				mu.Unlock()

			} else if constants.IsItemObjectID(obj.ObjectID()) {
				// This is a dropped item — send ItemOnGround
				droppedItem, ok := world.Instance().GetItem(obj.ObjectID())
				if !ok {
					return // Item not found or picked up, skip
				}

				itemOnGroundPkt := serverpackets.NewItemOnGround(droppedItem)
				payloadData, err = itemOnGroundPkt.Write()
				packetType = "ItemOnGround"

				mu.Lock()
				itemCount++
				mu.Unlock()

			} else {
				return // Unknown object type, skip
			}

			if err != nil {
				slog.Error("failed to serialize packet",
					"packet_type", packetType,
					"object_id", obj.ObjectID(),
					"error", err)
				mu.Lock()
				if lastErr == nil {
					lastErr = err
				}
				mu.Unlock()
				return
			}

			// Encrypt into pool buffer (zero-alloc in steady state)
			var encPkt []byte
			if writePool != nil {
				encPkt, err = writePool.EncryptToPooled(client.Encryption(), payloadData, len(payloadData))
			} else {
				// Fallback: allocate buffer (for tests without writePool)
				buf := make([]byte, constants.PacketHeaderSize+len(payloadData)+constants.PacketBufferPadding)
				copy(buf[constants.PacketHeaderSize:], payloadData)
				var encSize int
				encSize, err = protocol.EncryptInPlace(client.Encryption(), buf, len(payloadData))
				if err == nil {
					encPkt = buf[:encSize]
				}
			}

			if err != nil {
				slog.Error("failed to encrypt packet",
					"packet_type", packetType,
					"object_id", obj.ObjectID(),
					"error", err)
				mu.Lock()
				if lastErr == nil {
					lastErr = err
				}
				mu.Unlock()
				return
			}

			// Add encrypted packet to collection (mutex-protected)
			mu.Lock()
			encryptedPackets = append(encryptedPackets, encPkt)
			mu.Unlock()
		})

		return true // Continue iteration
	})

	// Wait for all goroutines to complete
	wg.Wait()

	// Check for errors during packet creation/encryption
	if lastErr != nil {
		return fmt.Errorf("creating visible objects info packets: %w", lastErr)
	}

	// Send all packets via write queue (writePump will batch via drain loop)
	if len(encryptedPackets) > 0 {
		for _, pkt := range encryptedPackets {
			if err := client.Send(pkt); err != nil {
				return fmt.Errorf("queueing visible object packet: %w", err)
			}
		}

		slog.Debug("sent info for visible objects",
			"character", player.Name(),
			"visible_players", playerCount,
			"visible_npcs", npcCount,
			"visible_items", itemCount,
			"total_packets", len(encryptedPackets))
	}

	return nil
}

// handleLogout processes the Logout packet (opcode 0x09).
// Client sends this when user clicks Exit button.
//
// Phase 4.17.5: MVP implementation with basic logout flow.
// Phase 31: Offline trade mode support added.
//
// Reference: L2J_Mobius Logout.java (53-107)
func (h *Handler) handleLogout(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	_, err := clientpackets.ParseLogout(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing Logout: %w", err)
	}

	// Get active player
	player := client.ActivePlayer()
	if player == nil {
		slog.Warn("Logout without active player",
			"account", client.AccountName(),
			"client", client.IP())
		// Close connection even if player is nil
		client.MarkForDisconnection()
		return ignorePacket()
	}

	// Check if can logout (15s combat delay)
	if !player.CanLogout() {
		slog.Info("logout denied (cannot logout)",
			"account", client.AccountName(),
			"character", player.Name(),
			"client", client.IP())

		// Send SystemMessage "YOU_CANNOT_EXIT_WHILE_IN_COMBAT"
		totalBytes := 0
		sysMsgPkt := serverpackets.NewSystemMessage(serverpackets.SysMsgYouCannotExitWhileInCombat)
		sysMsgData, err := sysMsgPkt.Write()
		if err != nil {
			slog.Error("failed to serialize combat deny SystemMessage", "error", err)
		} else {
			n := copy(buf[totalBytes:], sysMsgData)
			totalBytes += n
		}

		n, _, _ := actionFailedResponse(buf[totalBytes:])
		totalBytes += n

		return totalBytes, true, nil
	}

	slog.Info("player logging out",
		"account", client.AccountName(),
		"character", player.Name(),
		"level", player.Level(),
		"client", client.IP())

	// Close private store on logout
	if player.IsTrading() {
		player.ClosePrivateStore()
	}

	// Save player to DB (location, inventory, skills)
	if err := h.persister.SavePlayer(ctx, player); err != nil {
		slog.Error("failed to save player on logout",
			"character", player.Name(),
			"error", err)
	}

	// Remove from world (Phase 4.17.5)
	world.Instance().RemoveObject(player.ObjectID())
	world.IDGenerator().ReleasePlayerID(player.ObjectID())

	// Clear active player from client
	client.SetActivePlayer(nil)

	// Send LeaveWorld packet (Phase 4.17.3)
	leaveWorld := serverpackets.NewLeaveWorld()
	leaveWorldData, err := leaveWorld.Write()
	if err != nil {
		slog.Error("failed to serialize LeaveWorld",
			"character", player.Name(),
			"error", err)
		// Continue with disconnect even if packet parsing failed
		client.MarkForDisconnection()
		return ignorePacket()
	}

	n := copy(buf, leaveWorldData)
	if n != len(leaveWorldData) {
		slog.Error("buffer too small for LeaveWorld",
			"character", player.Name(),
			"size", len(leaveWorldData),
			"buffer_size", len(buf))
		// Continue with disconnect
		client.MarkForDisconnection()
		return ignorePacket()
	}

	// Mark client for disconnection (server.go will close TCP after sending LeaveWorld)
	client.MarkForDisconnection()

	slog.Info("player logged out successfully",
		"account", client.AccountName(),
		"character", player.Name())

	return n, true, nil
}

// handleRequestRestart processes the RequestRestart packet (opcode 0x46).
// Client sends this when user clicks "Restart" to return to character selection screen.
// Unlike Logout, RequestRestart does NOT close TCP connection — client returns to char selection.
//
// Phase 4.17.6: MVP implementation with basic restart flow.
// Enchant, class change, and festival checks deferred until those systems are wired.
//
// Reference: L2J_Mobius RequestRestart.java (60-173)
func (h *Handler) handleRequestRestart(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	_, err := clientpackets.ParseRequestRestart(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestRestart: %w", err)
	}

	// Verify client is in game
	if client.State() != ClientStateInGame {
		slog.Warn("RequestRestart from non-ingame state",
			"account", client.AccountName(),
			"state", client.State(),
			"client", client.IP())

		// Send denial
		restartResp := serverpackets.NewRestartResponse(false)
		respData, err := restartResp.Write()
		if err != nil {
			return 0, false, fmt.Errorf("serializing RestartResponse: %w", err)
		}
		copy(buf, respData)
		return len(respData), true, nil
	}

	// Get active player
	player := client.ActivePlayer()
	if player == nil {
		slog.Warn("RequestRestart without active player",
			"account", client.AccountName(),
			"client", client.IP())

		// Send denial
		restartResp := serverpackets.NewRestartResponse(false)
		respData, err := restartResp.Write()
		if err != nil {
			return 0, false, fmt.Errorf("serializing RestartResponse: %w", err)
		}
		copy(buf, respData)
		return len(respData), true, nil
	}

	// Active enchant check deferred: requires enchant session tracking.

	// Class change check deferred: requires class change session tracking.

	// Check if in trade/store mode
	if player.IsTrading() {
		slog.Info("restart denied (trading)",
			"account", client.AccountName(),
			"character", player.Name(),
			"client", client.IP())

		restartResp := serverpackets.NewRestartResponse(false)
		respData, err := restartResp.Write()
		if err != nil {
			return 0, false, fmt.Errorf("serializing RestartResponse: %w", err)
		}
		copy(buf, respData)
		return len(respData), true, nil
	}

	// Check if can logout (includes attack stance check)
	if !player.CanLogout() {
		slog.Info("restart denied (cannot logout)",
			"account", client.AccountName(),
			"character", player.Name(),
			"client", client.IP())

		restartResp := serverpackets.NewRestartResponse(false)
		respData, err := restartResp.Write()
		if err != nil {
			return 0, false, fmt.Errorf("serializing RestartResponse: %w", err)
		}
		copy(buf, respData)
		return len(respData), true, nil
	}

	// Festival participant check deferred: requires Seven Signs Festival event wiring.

	slog.Info("player restarting to character selection",
		"account", client.AccountName(),
		"character", player.Name(),
		"level", player.Level(),
		"client", client.IP())

	// Phase 4.17.7: Boss zone removal and Olympiad unregister deferred until boss zone tracking is added.

	// Phase 4.17.7: Instance cleanup deferred until instance system tracks player locations.

	// Phase 8.1: Close private store on restart
	if player.IsTrading() {
		player.ClosePrivateStore()
	}

	// Phase 6.0: Save player to DB (location, inventory, skills)
	if err := h.persister.SavePlayer(ctx, player); err != nil {
		slog.Error("failed to save player on restart",
			"character", player.Name(),
			"error", err)
	}

	// Remove from world (Phase 4.17.6)
	world.Instance().RemoveObject(player.ObjectID())
	world.IDGenerator().ReleasePlayerID(player.ObjectID())

	// Clear active player from client
	client.SetActivePlayer(nil)
	client.SetSelectedCharacter(-1)

	// Transition to AUTHENTICATED state (Phase 4.17.6)
	// This allows client to access CharacterSelect, CharacterCreate, CharacterDelete packets
	client.SetState(ClientStateAuthenticated)

	slog.Info("player returned to character selection",
		"account", client.AccountName(),
		"character", player.Name())

	// Send response packets
	var totalBytes int

	// 1. RestartResponse(true) — confirms restart success
	restartResp := serverpackets.NewRestartResponse(true)
	respData, err := restartResp.Write()
	if err != nil {
		slog.Error("failed to serialize RestartResponse",
			"character", player.Name(),
			"error", err)
		return 0, false, fmt.Errorf("serializing RestartResponse: %w", err)
	}
	n := copy(buf[totalBytes:], respData)
	if n != len(respData) {
		return 0, false, fmt.Errorf("buffer too small for RestartResponse")
	}
	totalBytes += n

	// 2. CharSelectionInfo — sends list of characters for account
	// Get SessionKey PlayOkID1 for CharSelectionInfo
	sessionKey := client.SessionKey()
	if sessionKey == nil {
		slog.Error("no session key for authenticated client",
			"account", client.AccountName(),
			"client", client.IP())
		return 0, false, fmt.Errorf("missing session key")
	}

	// Load characters for this account (Phase 4.17.6)
	players, err := h.charRepo.LoadByAccountName(ctx, client.AccountName())
	if err != nil {
		slog.Error("failed to load characters for restart",
			"account", client.AccountName(),
			"error", err)
		return 0, false, fmt.Errorf("loading characters: %w", err)
	}

	charList := serverpackets.NewCharSelectionInfoFromPlayers(client.AccountName(), sessionKey.PlayOkID1, players)
	charListData, err := charList.Write()
	if err != nil {
		slog.Error("failed to serialize CharSelectionInfo",
			"account", client.AccountName(),
			"error", err)
		return 0, false, fmt.Errorf("serializing CharSelectionInfo: %w", err)
	}
	n = copy(buf[totalBytes:], charListData)
	if n != len(charListData) {
		return 0, false, fmt.Errorf("buffer too small for CharSelectionInfo")
	}
	totalBytes += n

	slog.Info("restart completed successfully",
		"account", client.AccountName(),
		"total_bytes", totalBytes)

	return totalBytes, true, nil
}

// handleValidatePosition processes ValidatePosition packet (opcode 0x48).
// Client sends this periodically (~200ms) to report current position.
// Server validates and corrects if desynced.
//
// Movement validation — desync detection and correction.
//
// Reference: L2J_Mobius ValidatePosition.java
func (h *Handler) handleValidatePosition(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseValidatePosition(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing ValidatePosition: %w", err)
	}

	// Verify character is in game
	if client.State() != ClientStateInGame {
		return ignorePacket() // Ignore silently
	}

	// Get active player
	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket() // Ignore silently
	}

	// Z-bounds check (prevent flying/underground exploits)
	// Reference: L2J_Mobius ValidatePosition.java:76-82
	if pkt.Z < MinZCoordinate || pkt.Z > MaxZCoordinate {
		slog.Warn("abnormal Z coordinate from client",
			"character", player.Name(),
			"z", pkt.Z,
			"allowed_range", fmt.Sprintf("[%d..%d]", MinZCoordinate, MaxZCoordinate))

		// Teleport player to last server-validated position
		lastX, lastY, lastZ := player.Movement().LastServerPosition()
		player.SetLocation(model.NewLocation(lastX, lastY, lastZ, player.Location().Heading))

		// Send ValidateLocation to force correction
		return sendValidateLocation(buf, player)
	}

	// Update client-reported position
	player.Movement().SetClientPosition(pkt.X, pkt.Y, pkt.Z, pkt.Heading)

	// Check desync between client and server positions
	needsCorrection, diffSq := ValidatePositionDesync(player, pkt.X, pkt.Y, pkt.Z)
	if needsCorrection {
		slog.Info("position desync detected",
			"character", player.Name(),
			"diff_squared", diffSq,
			"client", fmt.Sprintf("(%d,%d,%d)", pkt.X, pkt.Y, pkt.Z),
			"server", fmt.Sprintf("(%d,%d,%d)", player.Location().X, player.Location().Y, player.Location().Z))

		// Send ValidateLocation to correct client
		return sendValidateLocation(buf, player)
	}

	// Position synchronized, no response needed
	return ignorePacket()
}

// handleRequestAction processes RequestAction packet (opcode 0x04).
// Client sends this when player clicks on an object (target selection or attack intent).
//
// Phase 5.2: Target System.
//
// Reference: L2J_Mobius RequestActionUse.java
func (h *Handler) handleRequestAction(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestAction(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestAction: %w", err)
	}

	// Verify character is in game
	if client.State() != ClientStateInGame {
		return ignorePacket() // Ignore silently
	}

	// Get active player
	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket() // Ignore silently
	}

	worldInst := world.Instance()

	// DroppedItem pickup — clicking on a dropped item picks it up
	// In L2 Interlude, item pickup is done through Action (0x04), NOT a separate opcode.
	if droppedItem, ok := worldInst.GetItem(uint32(pkt.ObjectID)); ok {
		return h.pickupDroppedItem(player, droppedItem, pkt.ObjectID, buf)
	}

	// Validate target selection
	target, err := ValidateTargetSelection(player, uint32(pkt.ObjectID), worldInst)
	if err != nil {
		slog.Debug("target selection failed",
			"character", player.Name(),
			"targetID", pkt.ObjectID,
			"error", err)
		// Silent failure — client will not change target
		return ignorePacket()
	}

	// Set target
	player.SetTarget(target)

	slog.Debug("target selected",
		"character", player.Name(),
		"targetID", target.ObjectID(),
		"targetName", target.Name(),
		"attackIntent", pkt.IsAttackIntent())

	// Prepare response buffer
	totalBytes := 0

	// 1. Send MyTargetSelected (highlight target + show HP bar)
	myTargetSel := serverpackets.NewMyTargetSelected(target.ObjectID())
	targetSelData, err := myTargetSel.Write()
	if err != nil {
		slog.Error("failed to serialize MyTargetSelected",
			"character", player.Name(),
			"error", err)
		return ignorePacket()
	}
	n := copy(buf[totalBytes:], targetSelData)
	totalBytes += n

	// 2. Send StatusUpdate (HP/MP/CP values for target)
	// Check if target is a Character (has HP/MP/CP)
	if character := getCharacterFromObject(target, worldInst, h.clientManager); character != nil {
		statusUpdate := serverpackets.NewStatusUpdateForTarget(character)
		statusData, err := statusUpdate.Write()
		if err != nil {
			slog.Error("failed to serialize StatusUpdate",
				"character", player.Name(),
				"error", err)
		} else {
			n = copy(buf[totalBytes:], statusData)
			totalBytes += n
		}
	}

	// NPC dialogues — show chat window on simple click for talkable NPC
	if pkt.ActionType == clientpackets.ActionSimpleClick {
		if npc, ok := worldInst.GetNpc(uint32(pkt.ObjectID)); ok {
			npcDef := skilldata.GetNpcDef(npc.TemplateID())
			if npcDef != nil && isNpcTalkable(npcDef.NpcType()) {
				htmlContent := h.buildNpcDialog(npc, player)
				htmlMsg := serverpackets.NewNpcHtmlMessage(int32(npc.ObjectID()), htmlContent)
				htmlData, err := htmlMsg.Write()
				if err != nil {
					slog.Error("failed to serialize NpcHtmlMessage",
						"character", player.Name(),
						"npcID", npc.TemplateID(),
						"error", err)
				} else {
					n = copy(buf[totalBytes:], htmlData)
					totalBytes += n
				}
			}
		}
	}

	return totalBytes, true, nil
}

// pickupDroppedItem handles picking up a dropped item from the world.
// Called from handleRequestAction when the clicked object is a DroppedItem.
func (h *Handler) pickupDroppedItem(player *model.Player, droppedItem *model.DroppedItem, objectID int32, buf []byte) (int, bool, error) {
	// Validate pickup range (200 units max)
	const maxPickupRangeSquared = 200 * 200

	playerLoc := player.Location()
	itemLoc := droppedItem.Location()

	dx := int64(playerLoc.X - itemLoc.X)
	dy := int64(playerLoc.Y - itemLoc.Y)
	distSq := dx*dx + dy*dy

	if distSq > maxPickupRangeSquared {
		slog.Debug("pickup failed: out of range",
			"character", player.Name(),
			"objectID", objectID,
			"distance_sq", distSq)
		return actionFailedOrError(buf, true)
	}

	// Get Item from DroppedItem
	item := droppedItem.Item()
	if item == nil {
		slog.Error("pickup failed: DroppedItem has nil item",
			"character", player.Name(),
			"objectID", objectID)
		return actionFailedResponse(buf)
	}

	// Add item to player's inventory
	if err := player.Inventory().AddItem(item); err != nil {
		slog.Error("pickup failed: cannot add to inventory",
			"character", player.Name(),
			"objectID", objectID,
			"itemID", item.ItemID(),
			"error", err)
		return actionFailedResponse(buf)
	}

	// Remove DroppedItem from world
	worldInst := world.Instance()
	worldInst.RemoveObject(uint32(objectID))

	// Broadcast DeleteObject to visible players
	deleteObj := serverpackets.NewDeleteObject(objectID)
	deleteData, err := deleteObj.Write()
	if err != nil {
		slog.Error("failed to serialize DeleteObject for pickup",
			"objectID", objectID,
			"error", err)
	} else {
		h.clientManager.BroadcastToVisible(player, deleteData, len(deleteData))
	}

	slog.Info("item picked up",
		"character", player.Name(),
		"itemID", item.ItemID(),
		"count", item.Count(),
		"objectID", objectID)

	// Send InventoryUpdate to client
	invUpdate := serverpackets.NewInventoryUpdate(serverpackets.InvUpdateEntry{
		ChangeType: serverpackets.InvUpdateAdd,
		Item:       item,
	})
	invData, err := invUpdate.Write()
	if err != nil {
		slog.Error("failed to serialize InventoryUpdate for pickup",
			"character", player.Name(),
			"error", err)
		return ignorePacket()
	}

	n := copy(buf, invData)
	return n, true, nil
}

// getCharacterFromObject attempts to extract Character from WorldObject.
// Returns nil if object is not a Character (e.g., dropped item).
// Uses clientManager to resolve player objectIDs to Character.
func getCharacterFromObject(obj *model.WorldObject, worldInst *world.World, cm *ClientManager) *model.Character {
	objectID := obj.ObjectID()

	// Check if it's an NPC
	if npc, ok := worldInst.GetNpc(objectID); ok {
		return npc.Character
	}

	// Check if it's a Player — look up via ClientManager
	if constants.IsPlayerObjectID(objectID) && cm != nil {
		if otherClient := cm.GetClientByObjectID(objectID); otherClient != nil {
			if otherPlayer := otherClient.ActivePlayer(); otherPlayer != nil {
				return otherPlayer.Character
			}
		}
		return nil
	}

	return nil
}

// handleAttackRequest processes AttackRequest packet (opcode 0x0A).
// Client sends this when player clicks on enemy to initiate auto-attack.
//
// Workflow:
//  1. Validate target exists in world
//  2. Validate attack (range, dead, etc)
//  3. Start auto-attack via player.DoAttack(target)
//
// Phase 5.3: Basic Combat System.
// Java reference: AttackRequest.java (runImpl, line 53-129).
func (h *Handler) handleAttackRequest(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseAttackRequest(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing AttackRequest: %w", err)
	}

	if client.State() != ClientStateInGame {
		return ignorePacket() // Ignore silently
	}

	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket()
	}

	// Attack speed throttle — prevent attack speed exploits.
	// Minimum interval = 500000 / pAtkSpd ms (Java: Creature.doAttack).
	pAtkSpd := player.GetPAtkSpd()
	if pAtkSpd < 1 {
		pAtkSpd = 1
	}
	minIntervalMs := int64(500000.0 / pAtkSpd)
	if minIntervalMs < 100 {
		minIntervalMs = 100 // absolute minimum 100ms
	}
	lastAtk := player.LastAttackTime()
	if lastAtk > 0 {
		elapsed := time.Since(time.Unix(0, lastAtk)).Milliseconds()
		if elapsed < minIntervalMs {
			return ignorePacket() // silently ignore — too fast
		}
	}

	// Get target from world
	worldInst := world.Instance()
	target, exists := worldInst.GetObject(pkt.ObjectID)
	if !exists {
		// Target not found — send ActionFailed
		return actionFailedOrError(buf, false)
	}

	// Validate attack (range, dead, etc)
	if err := combat.ValidateAttack(player, target); err != nil {
		slog.Warn("attack validation failed",
			"character", player.Name(),
			"target", target.ObjectID(),
			"error", err)

		// Send ActionFailed
		return actionFailedOrError(buf, false)
	}

	// PvP + PvE combat (Player vs Player/NPC)
	// ExecuteAttack handles type assertion internally
	if combat.CombatMgr != nil {
		combat.CombatMgr.ExecuteAttack(player, target)
	}

	// No response to client (Attack packet sent via broadcast)
	return ignorePacket()
}

// NOTE: handleRequestPickup was removed — item pickup is now handled in
// handleRequestAction via pickupDroppedItem(). In L2 Interlude, there is no
// separate RequestPickup opcode; pickup is done through the Action packet (0x04)
// when the target object is a DroppedItem.

// handleRequestMagicSkillUse processes RequestMagicSkillUse packet (opcode 0x2F).
// Client sends this when player uses a skill from the skill bar.
//
// Phase 5.9.4: Cast Flow & Packets.
// Java reference: RequestMagicSkillUse.java
func (h *Handler) handleRequestMagicSkillUse(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestMagicSkillUse(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestMagicSkillUse: %w", err)
	}

	if client.State() != ClientStateInGame {
		return ignorePacket()
	}

	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket()
	}

	if skill.CastMgr == nil {
		slog.Warn("CastManager not initialized, ignoring skill use")
		return ignorePacket()
	}

	if err := skill.CastMgr.UseMagic(player, pkt.SkillID, pkt.CtrlPressed, pkt.ShiftPressed); err != nil {
		slog.Debug("skill use failed",
			"player", player.Name(),
			"skillID", pkt.SkillID,
			"error", err)

		// Send ActionFailed
		return actionFailedOrError(buf, false)
	}

	return ignorePacket()
}

// handleSay2 processes the Say2 packet (opcode 0x38).
// Client sends this when player types a chat message.
//
// Phase 5.11: Chat System.
// Channels supported: GENERAL (radius), SHOUT (all), WHISPER (1 player), TRADE (all).
// Java reference: Say2.java, CreatureSay.java.
func (h *Handler) handleSay2(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseSay2(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing Say2: %w", err)
	}

	if client.State() != ClientStateInGame {
		return ignorePacket()
	}

	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket()
	}

	chatType := ChatType(pkt.ChatType)

	// Validate chat type
	if !chatType.IsValid() {
		slog.Warn("invalid chat type",
			"character", player.Name(),
			"chatType", pkt.ChatType,
			"client", client.IP())
		return 0, false, nil // disconnect
	}

	// Validate empty message
	if len(pkt.Text) == 0 {
		slog.Warn("empty chat message",
			"character", player.Name(),
			"chatType", pkt.ChatType,
			"client", client.IP())
		return 0, false, nil // disconnect
	}

	// Phase 17: Intercept admin commands (//) and user commands (/)
	// Admin commands start with "//", user commands with "/"
	// Must check before message length validation (GM commands can be longer)
	if h.adminHandler != nil && chatType == ChatGeneral {
		if strings.HasPrefix(pkt.Text, "//") {
			// Admin command
			cmdText := pkt.Text[2:]
			h.adminHandler.HandleAdminCommand(player, cmdText)
			return h.sendAdminResponse(client, player, buf)
		}
		if strings.HasPrefix(pkt.Text, "/") && !strings.HasPrefix(pkt.Text, "//") {
			// User command
			cmdText := pkt.Text[1:]
			if h.adminHandler.HandleUserCommand(player, cmdText) {
				return h.sendAdminResponse(client, player, buf)
			}
			// If user command not found, fall through to normal chat
		}
	}

	// Validate message length (max 105 chars for non-GM)
	if len([]rune(pkt.Text)) > MaxMessageLength && !player.IsGM() {
		slog.Info("chat message too long",
			"character", player.Name(),
			"length", len([]rune(pkt.Text)),
			"max", MaxMessageLength)

		// Send system message: exceeded chat text limit
		sysMsg := serverpackets.NewSystemMessage(serverpackets.SysMsgYouHaveExceededTheChatTextLimit)
		return sendPacket(buf, sysMsg, "SystemMessage")
	}

	// Route by chat type
	switch chatType {
	case ChatGeneral:
		return h.handleChatGeneral(client, player, pkt.Text, buf)
	case ChatShout:
		return h.handleChatShout(player, pkt.Text, buf)
	case ChatWhisper:
		return h.handleChatWhisper(client, player, pkt.Text, pkt.Target, buf)
	case ChatTrade:
		return h.handleChatTrade(player, pkt.Text, buf)
	default:
		slog.Warn("unsupported chat type",
			"character", player.Name(),
			"chatType", pkt.ChatType)
		return ignorePacket()
	}
}

// sendAdminResponse reads the pending admin message from the player
// and sends it back to the client as a CreatureSay packet.
// If the message starts with "ANNOUNCE:", it broadcasts to all players.
//
// Phase 17: Admin Commands.
func (h *Handler) sendAdminResponse(_ *GameClient, player *model.Player, buf []byte) (int, bool, error) {
	msg := player.ClearLastAdminMessage()
	if msg == "" {
		return ignorePacket()
	}

	// Announce: broadcast to all players via ChatAnnounce channel
	if strings.HasPrefix(msg, "ANNOUNCE:") {
		text := strings.TrimPrefix(msg, "ANNOUNCE:")
		say := serverpackets.NewCreatureSay(int32(player.ObjectID()), int32(ChatAnnounce), player.Name(), text)
		sayData, err := say.Write()
		if err != nil {
			return 0, false, fmt.Errorf("serializing CreatureSay ANNOUNCE: %w", err)
		}
		h.clientManager.BroadcastToAll(sayData, len(sayData))
		n := copy(buf, sayData)
		return n, true, nil
	}

	// Normal admin response: send to command issuer only via PETITION_GM channel (type 7)
	say := serverpackets.NewCreatureSay(0, int32(ChatPetitionGM), "System", msg)
	return sendPacket(buf, say, "admin response")
}

// handleChatGeneral broadcasts a GENERAL message to nearby visible players.
// Radius is LODNear (~1250 units, same region).
func (h *Handler) handleChatGeneral(client *GameClient, player *model.Player, text string, buf []byte) (int, bool, error) {
	say := serverpackets.NewCreatureSay(int32(player.ObjectID()), int32(ChatGeneral), player.Name(), text)
	sayData, err := say.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CreatureSay GENERAL: %w", err)
	}

	// Send to sender
	n := copy(buf, sayData)

	// Broadcast to nearby visible players
	h.clientManager.BroadcastToVisibleNear(player, sayData, len(sayData))

	return n, true, nil
}

// handleChatShout broadcasts a SHOUT message to all connected players.
func (h *Handler) handleChatShout(player *model.Player, text string, buf []byte) (int, bool, error) {
	say := serverpackets.NewCreatureSay(int32(player.ObjectID()), int32(ChatShout), player.Name(), text)
	sayData, err := say.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CreatureSay SHOUT: %w", err)
	}

	// Send to sender (included in BroadcastToAll but also return in response buffer)
	n := copy(buf, sayData)

	// Broadcast to all players
	h.clientManager.BroadcastToAll(sayData, len(sayData))

	return n, true, nil
}

// handleChatWhisper sends a WHISPER message to a specific player by name.
func (h *Handler) handleChatWhisper(senderClient *GameClient, sender *model.Player, text, targetName string, buf []byte) (int, bool, error) {
	if targetName == "" {
		return ignorePacket()
	}

	targetClient := h.clientManager.FindClientByPlayerName(targetName)
	if targetClient == nil {
		// Target not found — send system message
		sysMsg := serverpackets.NewSystemMessage(serverpackets.SysMsgTargetIsNotFound).AddString(targetName)
		return sendPacket(buf, sysMsg, "SystemMessage")
	}

	targetPlayer := targetClient.ActivePlayer()
	if targetPlayer == nil {
		sysMsg := serverpackets.NewSystemMessage(serverpackets.SysMsgTargetIsNotFound).AddString(targetName)
		return sendPacket(buf, sysMsg, "SystemMessage")
	}

	// Send message to target
	sayToTarget := serverpackets.NewCreatureSay(int32(sender.ObjectID()), int32(ChatWhisper), sender.Name(), text)
	sayToTargetData, err := sayToTarget.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CreatureSay WHISPER: %w", err)
	}

	if err := h.clientManager.SendToPlayer(targetPlayer.ObjectID(), sayToTargetData, len(sayToTargetData)); err != nil {
		slog.Warn("failed to send whisper to target",
			"sender", sender.Name(),
			"target", targetName,
			"error", err)
	}

	// Echo to sender: "-> targetName: text"
	sayToSender := serverpackets.NewCreatureSay(int32(sender.ObjectID()), int32(ChatWhisper), sender.Name(), "->"+targetPlayer.Name()+": "+text)
	sayToSenderData, err := sayToSender.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CreatureSay WHISPER echo: %w", err)
	}

	n := copy(buf, sayToSenderData)
	return n, true, nil
}

// handleChatTrade broadcasts a TRADE message to all connected players.
func (h *Handler) handleChatTrade(player *model.Player, text string, buf []byte) (int, bool, error) {
	say := serverpackets.NewCreatureSay(int32(player.ObjectID()), int32(ChatTrade), player.Name(), text)
	sayData, err := say.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing CreatureSay TRADE: %w", err)
	}

	// Send to sender
	n := copy(buf, sayData)

	// Broadcast to all players
	h.clientManager.BroadcastToAll(sayData, len(sayData))

	return n, true, nil
}

// --- Phase 8: NPC Interaction ---

// NPC interaction distance limit (game units).
const maxNpcInteractionDistance = 150

// maxNpcInteractionDistanceSquared is squared for performance (avoid sqrt).
const maxNpcInteractionDistanceSquared = maxNpcInteractionDistance * maxNpcInteractionDistance

// isNpcTalkable returns true for NPC types that can show dialog.
// Phase 8.2: NPC Dialogues.
func isNpcTalkable(npcType string) bool {
	switch npcType {
	case "folk", "merchant", "guard", "teleporter", "warehouse":
		return true
	default:
		return false
	}
}

// buildNpcDialog builds the HTML dialog shown when a player talks to an NPC.
func (h *Handler) buildNpcDialog(npc *model.Npc, _ *model.Player) string {
	return h.buildNpcDefaultHtmlFallback(npc)
}

// buildNpcDefaultHtmlFallback is a hardcoded fallback when DialogManager is nil.
// Used in tests where DialogManager is not wired.
func (h *Handler) buildNpcDefaultHtmlFallback(npc *model.Npc) string {
	templateID := npc.TemplateID()
	npcDef := skilldata.GetNpcDef(templateID)
	if npcDef == nil {
		return "<html><body>I have nothing to say.</body></html>"
	}

	var sb strings.Builder
	sb.WriteString("<html><body>")
	sb.WriteString(npcDef.Name())
	sb.WriteString(":<br>")

	npcType := npcDef.NpcType()

	if buylists := skilldata.GetBuylistsByNpc(templateID); len(buylists) > 0 {
		sb.WriteString("<a action=\"bypass -h npc_")
		sb.WriteString(strconv.FormatUint(uint64(npc.ObjectID()), 10))
		sb.WriteString("_Shop\">Shop</a><br>")
	}

	if npcType == "merchant" {
		sb.WriteString("<a action=\"bypass -h npc_")
		sb.WriteString(strconv.FormatUint(uint64(npc.ObjectID()), 10))
		sb.WriteString("_Sell\">Sell</a><br>")
	}

	if npcType == "teleporter" && skilldata.HasTeleporter(templateID) {
		objIDStr := strconv.FormatUint(uint64(npc.ObjectID()), 10)
		sb.WriteString("<a action=\"bypass -h npc_")
		sb.WriteString(objIDStr)
		sb.WriteString("_Teleport NORMAL\">Teleport</a><br>")
	}

	if npcType == "warehouse" {
		objIDStr := strconv.FormatUint(uint64(npc.ObjectID()), 10)
		sb.WriteString("<a action=\"bypass -h npc_")
		sb.WriteString(objIDStr)
		sb.WriteString("_DepositP\">Deposit Items</a><br>")
		sb.WriteString("<a action=\"bypass -h npc_")
		sb.WriteString(objIDStr)
		sb.WriteString("_WithdrawP\">Withdraw Items</a><br>")
	}

	sb.WriteString("</body></html>")
	return sb.String()
}

// handleNpcChat handles "Chat N" bypass — shows dialog page N.
//
// Phase 11: NPC Dialog System.
func (h *Handler) handleNpcChat(_ *model.Player, npc *model.Npc, arg string, buf []byte) (int, bool, error) {
	_, _ = strconv.Atoi(arg)

	npcDef := skilldata.GetNpcDef(npc.TemplateID())
	npcName := "NPC"
	if npcDef != nil {
		npcName = npcDef.Name()
	}

	content := "<html><body>" + npcName + ":<br>I have nothing more to say.<br></body></html>"

	htmlMsg := serverpackets.NewNpcHtmlMessage(int32(npc.ObjectID()), content)
	msgData, err := htmlMsg.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing NpcHtmlMessage: %w", err)
	}

	n := copy(buf, msgData)
	return n, true, nil
}

// handleRequestBypassToServer processes RequestBypassToServer packet (opcode 0x21).
// Client sends this when player clicks a link in NPC HTML dialog.
//
// Bypass routing:
//   - "npc_%objectId%_Shop" → send BuyList
//   - "npc_%objectId%_Sell" → send SellList
//   - "npc_%objectId%_Teleport" → teleport list or execute teleport
//   - "_bbshome", "_bbsgetfav" → Community Board
//
// Phase 8.2: NPC Dialogues.
func (h *Handler) handleRequestBypassToServer(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestBypassToServer(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestBypassToServer: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket()
	}

	bypass := pkt.Bypass
	slog.Debug("bypass received", "character", player.Name(), "bypass", bypass)

	// Route NPC bypass commands: "npc_<objectID>_<command>"
	if strings.HasPrefix(bypass, "npc_") {
		return h.handleNpcBypass(player, bypass, buf)
	}

	slog.Warn("unknown bypass command", "bypass", bypass, "character", player.Name())
	return ignorePacket()
}

// handleNpcBypass routes NPC-specific bypass commands.
// Format: "npc_<objectID>_<command>"
//
// Phase 8.2/8.3: NPC Dialogues + Shops.
func (h *Handler) handleNpcBypass(player *model.Player, bypass string, buf []byte) (int, bool, error) {
	// Parse: "npc_<objectID>_<command>"
	parts := strings.SplitN(bypass, "_", 3)
	if len(parts) < 3 {
		slog.Warn("malformed npc bypass", "bypass", bypass)
		return ignorePacket()
	}

	npcObjectID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		slog.Warn("invalid npc objectID in bypass", "bypass", bypass, "error", err)
		return ignorePacket()
	}

	command := parts[2]
	worldInst := world.Instance()

	// Validate NPC exists and is within interaction distance
	npc, ok := worldInst.GetNpc(uint32(npcObjectID))
	if !ok {
		slog.Warn("bypass target NPC not found", "objectID", npcObjectID)
		return ignorePacket()
	}

	playerLoc := player.Location()
	npcLoc := npc.Location()
	distSq := playerLoc.DistanceSquared(npcLoc)
	if distSq > maxNpcInteractionDistanceSquared {
		slog.Debug("NPC too far for bypass interaction",
			"character", player.Name(),
			"npcID", npc.TemplateID(),
			"distSq", distSq)
		return actionFailedResponse(buf)
	}

	// Commands may have arguments after space: "Chat 1"
	cmdParts := strings.SplitN(command, " ", 2)
	cmdName := cmdParts[0]
	var cmdArg string
	if len(cmdParts) > 1 {
		cmdArg = cmdParts[1]
	}

	switch cmdName {
	case "Chat":
		return h.handleNpcChat(player, npc, cmdArg, buf)
	default:
		slog.Debug("unhandled NPC bypass command",
			"command", command,
			"npcID", npc.TemplateID(),
			"character", player.Name())
		return ignorePacket()
	}
}


func (h *Handler) handleExtendedPacket(_ context.Context, client *GameClient, data, _ []byte) (int, bool, error) {
	if len(data) < 2 {
		return 0, true, fmt.Errorf("extended packet too short: %d bytes", len(data))
	}

	subOpcode := int16(data[0]) | int16(data[1])<<8 // LE read

	slog.Debug("unhandled extended packet sub-opcode",
		"subOpcode", fmt.Sprintf("0x%04X", subOpcode),
		"client", client.IP())
	return ignorePacket()
}

// handleRequestDropItem processes the RequestDropItem packet (opcode 0x12).
// Removes item from inventory and drops it on the ground.
func (h *Handler) handleRequestDropItem(ctx context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestDropItem(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestDropItem: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, fmt.Errorf("no active player for drop item")
	}

	inv := player.Inventory()
	if inv == nil {
		return 0, false, fmt.Errorf("no inventory for drop item")
	}

	// Validate count
	if pkt.Count <= 0 {
		slog.Warn("invalid drop count", "count", pkt.Count, "account", client.AccountName())
		return 0, false, nil
	}

	objectID := uint32(pkt.ObjectID)

	// Find item in inventory
	item := inv.GetItem(objectID)
	if item == nil {
		slog.Warn("item not found for drop", "objectID", objectID, "account", client.AccountName())
		return 0, false, nil
	}

	// Cannot drop equipped items
	if item.IsEquipped() {
		slog.Warn("cannot drop equipped item", "objectID", objectID, "account", client.AccountName())
		return 0, false, nil
	}

	// Cannot drop quest items
	if tmpl := item.Template(); tmpl != nil && tmpl.Type == model.ItemTypeQuestItem {
		slog.Warn("cannot drop quest item", "objectID", objectID, "account", client.AccountName())
		return 0, false, nil
	}

	// Remove from inventory
	if item.Template() != nil && item.Template().Stackable {
		removed := inv.RemoveItemsByID(item.Template().ItemID, pkt.Count)
		if removed <= 0 {
			slog.Warn("insufficient items to drop", "objectID", objectID, "count", pkt.Count)
			return 0, false, nil
		}
	} else {
		inv.RemoveItem(objectID)
	}

	// Create dropped item on ground
	dropLoc := model.NewLocation(pkt.X, pkt.Y, pkt.Z, 0)
	droppedItem := model.NewDroppedItem(world.IDGenerator().NextItemID(), item, dropLoc, player.ObjectID())

	// Add to world (NewDroppedItem already sets WorldObject.Data)
	if err := world.Instance().AddObject(droppedItem.WorldObject); err != nil {
		slog.Error("adding dropped item to world", "error", err)
		return 0, false, nil
	}

	// Broadcast ItemOnGround to nearby players
	dropPkt := serverpackets.NewItemOnGround(droppedItem)
	dropData, err := dropPkt.Write()
	if err != nil {
		slog.Error("serializing ItemOnGround", "error", err)
		return 0, false, nil
	}
	h.clientManager.BroadcastToVisible(player, dropData, len(dropData))

	// Send updated inventory to player
	invPkt := serverpackets.NewInventoryItemList(inv.GetItems())
	invData, err := invPkt.Write()
	if err != nil {
		slog.Error("serializing InventoryItemList", "error", err)
		return 0, false, nil
	}
	n := copy(buf, invData)

	slog.Debug("item dropped",
		"objectID", objectID,
		"count", pkt.Count,
		"x", pkt.X, "y", pkt.Y, "z", pkt.Z,
		"account", client.AccountName())

	return n, true, nil
}

// handleRequestSocialAction processes the RequestSocialAction packet (opcode 0x1B).
// Validates player state and broadcasts the social action animation to nearby players.
//
// Validation rules:
//   - Player must be alive (not dead)
//   - Player must not be in private store mode
//   - Player must not be fishing
//   - ActionID must be in range [2..16]
//   - ActionID 15 (Charm) requires hero status
func (h *Handler) handleRequestSocialAction(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestSocialAction(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestSocialAction: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, fmt.Errorf("no active player for social action")
	}

	// Validate action ID range (2-16 for Interlude)
	if pkt.ActionID < serverpackets.MinSocialActionID || pkt.ActionID > serverpackets.MaxSocialActionID {
		slog.Warn("invalid social action ID",
			"actionID", pkt.ActionID,
			"account", client.AccountName())
		return actionFailedResponse(buf)
	}

	// Dead players cannot perform social actions
	if player.IsDead() {
		return actionFailedResponse(buf)
	}

	// Players in private store mode cannot perform social actions
	if player.IsTrading() {
		return actionFailedResponse(buf)
	}

	// Players currently fishing cannot perform social actions
	if player.IsFishing() {
		return actionFailedResponse(buf)
	}

	// Charm (actionID 15) is hero-only emote
	if pkt.ActionID == serverpackets.SocialActionCharm && !player.IsHero() {
		return actionFailedResponse(buf)
	}

	// Broadcast SocialAction to nearby players (including sender)
	sa := serverpackets.NewSocialAction(int32(player.ObjectID()), pkt.ActionID)
	saData, err := sa.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing SocialAction: %w", err)
	}

	h.clientManager.BroadcastToVisible(player, saData, len(saData))

	return 0, false, nil
}

// handleRequestTargetCanceld processes RequestTargetCanceld (opcode 0x37).
// Clears the player's current target.
func (h *Handler) handleRequestTargetCanceld(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	_, err := clientpackets.ParseRequestTargetCanceld(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestTargetCanceld: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	player.ClearTarget()

	// Send TargetUnselected to the player (objectID=0 means no target)
	targetPkt := serverpackets.NewMyTargetSelected(0)
	return sendPacket(buf, targetPkt, "MyTargetSelected")
}

// handleAppearing processes Appearing (opcode 0x30).
// Sent by client after teleport. Broadcasts character info to nearby players.
func (h *Handler) handleAppearing(_ context.Context, client *GameClient, _, buf []byte) (int, bool, error) {
	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	// Broadcast CharInfo to nearby so they see the player appear
	charInfo := serverpackets.NewCharInfo(player)
	charData, err := charInfo.Write()
	if err != nil {
		slog.Error("serializing CharInfo for appearing", "error", err)
		return 0, false, nil
	}
	h.clientManager.BroadcastToVisibleExcept(player, player, charData, len(charData))

	return 0, false, nil
}

// handleChangeMoveType2 processes ChangeMoveType2 (opcode 0x1C).
// Toggles walk/run mode and broadcasts to nearby players.
func (h *Handler) handleChangeMoveType2(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseChangeMoveType2(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing ChangeMoveType2: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	running := pkt.TypeRun == 1
	player.SetRunning(running)

	// Broadcast to nearby players
	moveType := int32(0)
	if running {
		moveType = 1
	}
	changePkt := &serverpackets.ChangeMoveType{
		ObjectID: int32(player.ObjectID()),
		MoveType: moveType,
	}
	changeData, err := changePkt.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing ChangeMoveType: %w", err)
	}
	h.clientManager.BroadcastToVisible(player, changeData, len(changeData))

	return 0, false, nil
}

// handleChangeWaitType2 processes ChangeWaitType2 (opcode 0x1D).
// Toggles sit/stand and broadcasts to nearby players.
func (h *Handler) handleChangeWaitType2(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseChangeWaitType2(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing ChangeWaitType2: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	if pkt.TypeStand == 1 {
		// Stand up
		player.SetSitting(false)
		changePkt := serverpackets.NewChangeWaitType(player, serverpackets.WaitTypeStanding)
		changeData, err := changePkt.Write()
		if err != nil {
			return 0, false, fmt.Errorf("serializing ChangeWaitType: %w", err)
		}
		h.clientManager.BroadcastToVisible(player, changeData, len(changeData))
	} else {
		// Sit down
		player.SetSitting(true)
		changePkt := serverpackets.NewChangeWaitType(player, serverpackets.WaitTypeSitting)
		changeData, err := changePkt.Write()
		if err != nil {
			return 0, false, fmt.Errorf("serializing ChangeWaitType: %w", err)
		}
		h.clientManager.BroadcastToVisible(player, changeData, len(changeData))
	}

	return 0, false, nil
}

// handleRequestSkillList processes RequestSkillList (opcode 0x3F).
// Sends the player's skill list.
func (h *Handler) handleRequestSkillList(_ context.Context, client *GameClient, _, buf []byte) (int, bool, error) {
	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	skillList := serverpackets.NewSkillList(player.Skills())
	return sendPacket(buf, skillList, "SkillList")
}

// handleRequestItemList processes RequestItemList (opcode 0x0F).
// Sends the full inventory item list to the player.
func (h *Handler) handleRequestItemList(_ context.Context, client *GameClient, _, buf []byte) (int, bool, error) {
	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	inv := player.Inventory()
	if inv == nil {
		return 0, false, nil
	}

	invPkt := serverpackets.NewInventoryItemList(inv.GetItems())
	return sendPacket(buf, invPkt, "InventoryItemList")
}

// handleRequestUnEquipItem processes RequestUnEquipItem (opcode 0x11).
// Unequips an item from the specified slot.
func (h *Handler) handleRequestUnEquipItem(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestUnEquipItem(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestUnEquipItem: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	inv := player.Inventory()
	if inv == nil {
		return 0, false, nil
	}

	item := inv.UnequipItem(pkt.Slot)
	if item == nil {
		slog.Debug("nothing equipped in slot", "slot", pkt.Slot)
		return 0, false, nil
	}

	// Send updated inventory
	invPkt := serverpackets.NewInventoryItemList(inv.GetItems())
	invData, err := invPkt.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing InventoryItemList: %w", err)
	}

	// Broadcast UserInfo for visual update
	userInfo := serverpackets.NewUserInfo(player)
	uiData, err := userInfo.Write()
	if err != nil {
		slog.Error("serializing UserInfo after unequip", "error", err)
	} else {
		h.clientManager.BroadcastToVisible(player, uiData, len(uiData))
	}

	n := copy(buf, invData)
	return n, true, nil
}

// handleRequestDestroyItem processes RequestDestroyItem (opcode 0x59).
// Destroys an item from inventory.
func (h *Handler) handleRequestDestroyItem(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestDestroyItem(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing RequestDestroyItem: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	inv := player.Inventory()
	if inv == nil {
		return 0, false, nil
	}

	objID := uint32(pkt.ObjectID)
	item := inv.GetItem(objID)
	if item == nil {
		slog.Warn("item not found for destroy", "objectID", pkt.ObjectID, "account", client.AccountName())
		return 0, false, nil
	}

	// Cannot destroy equipped items
	if item.IsEquipped() {
		slog.Warn("cannot destroy equipped item", "objectID", pkt.ObjectID)
		return 0, false, nil
	}

	// Remove from inventory
	if item.Template() != nil && item.Template().Stackable && pkt.Count > 0 {
		inv.RemoveItemsByID(item.Template().ItemID, int64(pkt.Count))
	} else {
		inv.RemoveItem(objID)
	}

	// Send updated inventory
	invPkt := serverpackets.NewInventoryItemList(inv.GetItems())
	invData, err := invPkt.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing InventoryItemList: %w", err)
	}
	n := copy(buf, invData)

	slog.Debug("item destroyed", "objectID", pkt.ObjectID, "count", pkt.Count, "account", client.AccountName())
	return n, true, nil
}

// handleStartRotating processes StartRotating (opcode 0x4A).
// Broadcasts character rotation start to nearby players.
func (h *Handler) handleStartRotating(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseStartRotating(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing StartRotating: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	rotPkt := &serverpackets.StartRotation{
		ObjectID: int32(player.ObjectID()),
		Degree:   pkt.Degree,
		Side:     pkt.Side,
		Speed:    0,
	}
	rotData, err := rotPkt.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing StartRotation: %w", err)
	}
	h.clientManager.BroadcastToVisibleExcept(player, player, rotData, len(rotData))

	return 0, false, nil
}

// handleFinishRotating processes FinishRotating (opcode 0x4B).
// Broadcasts character rotation stop to nearby players.
func (h *Handler) handleFinishRotating(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseFinishRotating(data)
	if err != nil {
		return 0, false, fmt.Errorf("parsing FinishRotating: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return 0, false, nil
	}

	rotPkt := &serverpackets.StopRotation{
		ObjectID: int32(player.ObjectID()),
		Degree:   pkt.Degree,
		Speed:    0,
	}
	rotData, err := rotPkt.Write()
	if err != nil {
		return 0, false, fmt.Errorf("serializing StopRotation: %w", err)
	}
	h.clientManager.BroadcastToVisibleExcept(player, player, rotData, len(rotData))

	return 0, false, nil
}


// handleRequestShortCutReg registers a shortcut in the action bar (C2S 0x33).
//
// Reference: L2J_Mobius RequestShortcutReg.java
func (h *Handler) handleRequestShortCutReg(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestShortCutReg(data)
	if err != nil {
		return 0, true, fmt.Errorf("parsing RequestShortCutReg: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket()
	}

	// Validate page/slot bounds
	if pkt.Page < 0 || pkt.Page >= model.MaxShortcutPages || pkt.Slot < 0 || pkt.Slot >= model.MaxShortcutsPerBar {
		return ignorePacket()
	}

	// Java: for NONE type, just ignore
	if pkt.Type == model.ShortcutTypeNone {
		return ignorePacket()
	}

	level := int32(-1)

	switch pkt.Type {
	case model.ShortcutTypeSkill:
		// Verify player knows this skill and use actual server-side level
		skillLevel := player.GetSkillLevel(pkt.ID)
		if skillLevel <= 0 {
			return ignorePacket()
		}
		level = skillLevel

	case model.ShortcutTypeItem:
		// Verify item exists in inventory
		inv := player.Inventory()
		if inv == nil || inv.GetItem(uint32(pkt.ID)) == nil {
			return ignorePacket()
		}

	case model.ShortcutTypeAction, model.ShortcutTypeMacro, model.ShortcutTypeRecipe:
		// No additional validation needed
	}

	sc := &model.Shortcut{
		Slot:  pkt.Slot,
		Page:  pkt.Page,
		Type:  pkt.Type,
		ID:    pkt.ID,
		Level: level,
	}

	player.RegisterShortcut(sc)

	// Send ShortCutRegister confirmation to client
	regPkt := serverpackets.NewShortCutRegister(sc)
	regData, err := regPkt.Write()
	if err != nil {
		return 0, true, fmt.Errorf("writing ShortCutRegister: %w", err)
	}
	n := copy(buf, regData)

	return n, true, nil
}

// handleRequestShortCutDel deletes a shortcut from the action bar (C2S 0x35).
//
// Reference: L2J_Mobius RequestShortcutDel.java
func (h *Handler) handleRequestShortCutDel(_ context.Context, client *GameClient, data, buf []byte) (int, bool, error) {
	pkt, err := clientpackets.ParseRequestShortCutDel(data)
	if err != nil {
		return 0, true, fmt.Errorf("parsing RequestShortCutDel: %w", err)
	}

	player := client.ActivePlayer()
	if player == nil {
		return ignorePacket()
	}

	if pkt.Page < 0 || pkt.Page >= model.MaxShortcutPages || pkt.Slot < 0 || pkt.Slot >= model.MaxShortcutsPerBar {
		return ignorePacket()
	}

	player.DeleteShortcut(pkt.Slot, pkt.Page)

	// Java behaviour: re-send full shortcut list after deletion
	initPkt := serverpackets.NewShortCutInit(player.GetShortcuts())
	initData, err := initPkt.Write()
	if err != nil {
		return 0, true, fmt.Errorf("writing ShortCutInit: %w", err)
	}
	n := copy(buf, initData)

	return n, true, nil
}
