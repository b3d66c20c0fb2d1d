package combat

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/l2j-emu/aegis/internal/config"
	"github.com/l2j-emu/aegis/internal/data"
	"github.com/l2j-emu/aegis/internal/gameserver/serverpackets"
	"github.com/l2j-emu/aegis/internal/model"
	"github.com/l2j-emu/aegis/internal/world"
)

// AIManagerInterface hands out AI controllers without pulling the ai package
// into combat — combat needs to notify AI of incoming damage, but ai already
// depends on model/combat-adjacent packages, so a narrow interface here
// breaks the would-be cycle.
type AIManagerInterface interface {
	GetController(objectID uint32) (AIController, error)
}

// AIController is the subset of ai.Controller combat needs to poke on a hit.
type AIController interface {
	NotifyDamage(attackerID uint32, damage int32)
}

// HitResult is one resolved attack, exposed to tests via SetHitObserver.
type HitResult struct {
	AttackerID uint32
	TargetID   uint32
	Damage     int32
	Miss       bool
	Crit       bool
}

// broadcaster abstracts "who do I send this packet to" so the same hit
// resolution path works whether the attacker was a player or an NPC.
type broadcaster func(data []byte, size int)

// CombatManager resolves melee attacks, applies damage on a delay matching
// attack speed, and hands off to loot/respawn/XP callbacks on a kill.
// Lives outside model/gameserver to avoid import cycles: model <- combat <- gameserver.
type CombatManager struct {
	broadcastFunc    func(source *model.Player, data []byte, size int)
	npcBroadcastFunc func(x, y int32, data []byte, size int)

	aiManager AIManagerInterface

	npcDeathFunc func(npc *model.Npc)
	rewardFunc   func(killer *model.Player, npc *model.Npc)

	rates *config.Rates

	hitObserver func(HitResult)
}

// SetNpcDeathFunc wires the despawn/respawn callback fired when an NPC dies.
func (m *CombatManager) SetNpcDeathFunc(fn func(npc *model.Npc)) {
	m.npcDeathFunc = fn
}

// SetRewardFunc wires the XP/SP grant callback fired when a player lands a killing blow.
func (m *CombatManager) SetRewardFunc(fn func(killer *model.Player, npc *model.Npc)) {
	m.rewardFunc = fn
}

// SetRates installs the server's drop-rate multipliers.
func (m *CombatManager) SetRates(rates *config.Rates) {
	m.rates = rates
}

// SetHitObserver installs a callback invoked synchronously for every resolved
// attack, before the damage-application timer fires. Test-only hook.
func (m *CombatManager) SetHitObserver(fn func(HitResult)) {
	m.hitObserver = fn
}

// NewCombatManager wires a CombatManager. broadcastFunc should route through
// ClientManager.BroadcastToVisibleNear so packets only reach nearby clients.
func NewCombatManager(
	broadcastFunc func(*model.Player, []byte, int),
	npcBroadcastFunc func(int32, int32, []byte, int),
	aiManager AIManagerInterface,
) *CombatManager {
	return &CombatManager{
		broadcastFunc:    broadcastFunc,
		npcBroadcastFunc: npcBroadcastFunc,
		aiManager:        aiManager,
	}
}

// resolvedHit is the outcome of a miss/crit/damage roll shared by the
// player-attacker and NPC-attacker paths.
type resolvedHit struct {
	miss   bool
	crit   bool
	damage int32
}

// rollPhysicalHit applies the shared miss → crit → damage pipeline: a flat
// L2-style formula (76 × pAtk / pDef) scaled by a level-dependent random
// multiplier and doubled on crit.
func rollPhysicalHit(pAtk, pDef float64, level int32, missed, critted bool) resolvedHit {
	if missed {
		return resolvedHit{miss: true}
	}

	if pDef < 1 {
		pDef = 1
	}

	dmg := (76.0 * pAtk) / pDef
	dmg *= getRandomDamageMultiplier(level)
	if critted {
		dmg *= 2.0
	}
	if dmg < 1 {
		dmg = 1
	}

	return resolvedHit{crit: critted, damage: int32(dmg)}
}

// resolveCharacterTarget maps a world object onto the Character/PDef pair
// combat math needs, regardless of whether it's a player, a monster, or a
// plain non-aggressive NPC.
func resolveCharacterTarget(target *model.WorldObject) (*model.Character, int32, bool) {
	switch t := target.Data.(type) {
	case *model.Player:
		return t.Character, t.GetPDef(), true
	case *model.Monster:
		return t.Character, t.PDef(), true
	case *model.Npc:
		return t.Character, t.PDef(), true
	default:
		return nil, 0, false
	}
}

// ExecuteAttack resolves a player's physical attack against any world
// object (player, monster, or NPC), broadcasts the Attack packet and combat
// stance immediately, then schedules damage application after the
// attacker's weapon delay.
func (m *CombatManager) ExecuteAttack(attacker *model.Player, target *model.WorldObject) {
	targetCharacter, targetPDef, ok := resolveCharacterTarget(target)
	if !ok {
		slog.Warn("ExecuteAttack: unknown target type",
			"attacker", attacker.Name(),
			"targetID", target.ObjectID())
		return
	}

	missed := CalcHitMiss(attacker, targetCharacter)
	crit := !missed && CalcCrit(attacker, targetCharacter)
	hit := rollPhysicalHit(float64(attacker.GetPAtk()), float64(targetPDef), attacker.Level(), missed, crit)

	attack := serverpackets.NewAttack(attacker, target)
	attack.AddHit(target.ObjectID(), hit.damage, hit.miss, hit.crit)

	attackData, err := attack.Write()
	if err != nil {
		slog.Error("failed to write Attack packet",
			"attacker", attacker.Name(),
			"target", target.ObjectID(),
			"error", err)
		return
	}
	m.broadcastAttacker(attacker, attackData)

	if AttackStanceMgr != nil {
		AttackStanceMgr.AddAttackStance(attacker)
	}

	m.observeHit(attacker.ObjectID(), target.ObjectID(), hit)

	attackDelay := attacker.GetAttackDelay()
	time.AfterFunc(attackDelay, func() {
		m.applyDamage(attacker.ObjectID(), targetCharacter, hit, m.broadcastAttackerFn(attacker), func() {
			m.resolveDeath(attacker, targetCharacter)
		})
	})

	slog.Debug("attack executed",
		"attacker", attacker.Name(), "target", target.Name(),
		"damage", hit.damage, "miss", hit.miss, "crit", hit.crit)
}

// ExecuteNpcAttack resolves an NPC's physical attack against a player
// target, using NPC attack-speed-derived delay instead of weapon delay.
func (m *CombatManager) ExecuteNpcAttack(npc *model.Npc, target *model.WorldObject) {
	targetPlayer, ok := target.Data.(*model.Player)
	if !ok {
		slog.Warn("ExecuteNpcAttack: target is not a Player",
			"npc", npc.Name(), "targetID", target.ObjectID())
		return
	}
	if targetPlayer.IsDead() {
		return
	}

	missed := CalcHitMissGeneric()
	crit := !missed && CalcCritGeneric()
	hit := rollPhysicalHit(float64(npc.PAtk()), float64(targetPlayer.GetPDef()), npc.Level(), missed, crit)

	npcLoc := npc.Location()
	attack := serverpackets.NewNpcAttack(npc.ObjectID(), npcLoc, target)
	attack.AddHit(target.ObjectID(), hit.damage, hit.miss, hit.crit)

	attackData, err := attack.Write()
	if err != nil {
		slog.Error("failed to write NPC Attack packet",
			"npc", npc.Name(), "target", target.Name(), "error", err)
		return
	}
	m.broadcastFromNpc(npcLoc, attackData)

	m.observeHit(npc.ObjectID(), target.ObjectID(), hit)

	attackDelay := npcAttackDelay(npc.AtkSpeed())
	time.AfterFunc(attackDelay, func() {
		m.applyDamage(npc.ObjectID(), targetPlayer.Character, hit, m.broadcastNpcFn(npc), func() {
			if targetPlayer.DoDie(nil) {
				slog.Info("player killed by NPC", "victim", targetPlayer.Name(), "killer", npc.Name())
			}
		})
	})

	slog.Debug("NPC attack executed",
		"npc", npc.Name(), "target", targetPlayer.Name(),
		"damage", hit.damage, "miss", hit.miss, "crit", hit.crit)
}

// npcAttackDelay converts an NPC's attack-speed stat into a swing interval,
// falling back to the default NPC speed when the template left it unset.
func npcAttackDelay(atkSpeed int32) time.Duration {
	const defaultNpcAtkSpeed = 253
	if atkSpeed < 1 {
		atkSpeed = defaultNpcAtkSpeed
	}
	return time.Duration(500000/atkSpeed) * time.Millisecond
}

// applyDamage is the delayed half of a resolved attack: reduce HP, notify
// AI of the hit, broadcast the HP change, and invoke onDeath if this blow
// was lethal. Runs on whichever goroutine time.AfterFunc schedules it on.
func (m *CombatManager) applyDamage(attackerID uint32, target *model.Character, hit resolvedHit, bc broadcaster, onDeath func()) {
	if target.IsDead() || hit.miss || hit.damage <= 0 {
		return
	}

	target.ReduceCurrentHP(hit.damage)

	if m.aiManager != nil {
		if ctrl, err := m.aiManager.GetController(target.ObjectID()); err == nil {
			ctrl.NotifyDamage(attackerID, hit.damage)
		}
	}

	statusUpdate := serverpackets.NewStatusUpdateForTarget(target)
	statusData, err := statusUpdate.Write()
	if err != nil {
		slog.Error("failed to write StatusUpdate packet", "target", target.Name(), "error", err)
		return
	}
	bc(statusData, len(statusData))

	if target.IsDead() && onDeath != nil {
		onDeath()
	}
}

// resolveDeath handles the bookkeeping after a player's attack kills its
// target: reward XP/SP, drop loot, and trigger despawn/respawn when the
// victim was a monster or plain NPC. DoDie guards against double-processing
// when multiple in-flight hits land on the same tick.
func (m *CombatManager) resolveDeath(attacker *model.Player, target *model.Character) {
	if !target.DoDie(attacker) {
		return
	}

	var npc *model.Npc
	switch t := target.WorldObject.Data.(type) {
	case *model.Monster:
		npc = t.Npc
	case *model.Npc:
		npc = t
	}
	if npc != nil {
		if m.rewardFunc != nil {
			m.rewardFunc(attacker, npc)
		}
		m.dropLoot(npc, attacker)
		if m.npcDeathFunc != nil {
			m.npcDeathFunc(npc)
		}
	}

	slog.Info("target died", "victim", target.Name(), "killer", attacker.Name())
}

func (m *CombatManager) observeHit(attackerID, targetID uint32, hit resolvedHit) {
	if m.hitObserver == nil {
		return
	}
	m.hitObserver(HitResult{
		AttackerID: attackerID,
		TargetID:   targetID,
		Damage:     hit.damage,
		Miss:       hit.miss,
		Crit:       hit.crit,
	})
}

func (m *CombatManager) broadcastAttacker(attacker *model.Player, data []byte) {
	if m.broadcastFunc != nil {
		m.broadcastFunc(attacker, data, len(data))
	}
}

func (m *CombatManager) broadcastAttackerFn(attacker *model.Player) broadcaster {
	return func(data []byte, size int) {
		if m.broadcastFunc != nil {
			m.broadcastFunc(attacker, data, size)
		}
	}
}

func (m *CombatManager) broadcastFromNpc(loc model.Location, data []byte) {
	if m.npcBroadcastFunc != nil {
		m.npcBroadcastFunc(loc.X, loc.Y, data, len(data))
	}
}

func (m *CombatManager) broadcastNpcFn(npc *model.Npc) broadcaster {
	return func(data []byte, size int) {
		if m.npcBroadcastFunc == nil {
			return
		}
		loc := npc.Location()
		m.npcBroadcastFunc(loc.X, loc.Y, data, size)
	}
}

// lootDrop bundles everything spawnDroppedItem needs so the function itself
// doesn't carry a six-parameter signature.
type lootDrop struct {
	npc             *model.Npc
	npcLoc          model.Location
	world           *world.World
	autoDestroyTime time.Duration
}

// dropLoot rolls the NPC's drop table and spawns each resulting item on the
// ground around the corpse.
func (m *CombatManager) dropLoot(npc *model.Npc, _ *model.Player) {
	drops := CalculateDrops(npc.TemplateID(), m.rates)
	if len(drops) == 0 {
		return
	}

	ctx := lootDrop{
		npc:             npc,
		npcLoc:          npc.Location(),
		world:           world.Instance(),
		autoDestroyTime: lootLifetime(m.rates),
	}

	for _, drop := range drops {
		m.spawnDroppedItem(drop, ctx)
	}
}

// lootLifetime returns how long dropped loot stays on the ground before
// auto-destroying, defaulting to 60s when the rates config doesn't override it.
func lootLifetime(rates *config.Rates) time.Duration {
	const defaultLifetime = 60 * time.Second
	if rates != nil && rates.ItemAutoDestroyTime > 0 {
		return time.Duration(rates.ItemAutoDestroyTime) * time.Second
	}
	return defaultLifetime
}

// spawnDroppedItem materializes one drop-table roll as a ground item:
// builds its template, places it near the corpse, adds it to the world,
// broadcasts ItemOnGround, and arms its auto-destroy timer.
func (m *CombatManager) spawnDroppedItem(drop DropResult, ctx lootDrop) {
	itemTemplate := resolveDropTemplate(drop.ItemID, ctx.npc.Name())

	droppedObjectID := world.IDGenerator().NextItemID()

	item, err := model.NewItem(droppedObjectID, drop.ItemID, 0, drop.Count, itemTemplate)
	if err != nil {
		slog.Error("create loot item", "npc", ctx.npc.Name(), "itemID", drop.ItemID, "error", err)
		return
	}

	dropLoc := randomizeDropLocation(ctx.npcLoc)
	droppedItem := model.NewDroppedItem(droppedObjectID, item, dropLoc, ctx.npc.ObjectID())

	if err := ctx.world.AddItem(droppedItem); err != nil {
		slog.Error("add dropped item to world", "npc", ctx.npc.Name(), "itemID", drop.ItemID, "error", err)
		return
	}

	itemOnGround := serverpackets.NewItemOnGround(droppedItem)
	pktData, err := itemOnGround.Write()
	if err != nil {
		slog.Error("write ItemOnGround packet", "itemID", drop.ItemID, "error", err)
		return
	}
	m.broadcastFromNpc(model.NewLocation(ctx.npcLoc.X, ctx.npcLoc.Y, ctx.npcLoc.Z, 0), pktData)

	time.AfterFunc(ctx.autoDestroyTime, func() {
		m.expireGroundItem(droppedObjectID, dropLoc, drop.ItemID)
	})

	slog.Info("loot dropped",
		"npc", ctx.npc.Name(), "item", itemTemplate.Name, "count", drop.Count,
		"location", dropLoc, "objectID", droppedObjectID)
}

// expireGroundItem removes a dropped item once its auto-destroy timer fires
// and tells nearby clients it's gone.
func (m *CombatManager) expireGroundItem(objectID uint32, loc model.Location, itemID int32) {
	w := world.Instance()
	w.RemoveObject(objectID)
	world.IDGenerator().ReleaseItemID(objectID)

	deleteObj := serverpackets.NewDeleteObject(int32(objectID))
	deleteData, err := deleteObj.Write()
	if err != nil {
		slog.Error("write DeleteObject for loot despawn", "objectID", objectID, "error", err)
		return
	}
	m.broadcastFromNpc(loc, deleteData)

	slog.Debug("loot despawned", "objectID", objectID, "itemID", itemID)
}

// randomizeDropLocation scatters a drop within a small radius of the corpse
// so multiple drops from one kill don't stack exactly on top of each other.
func randomizeDropLocation(npcLoc model.Location) model.Location {
	const scatterRadius = 70
	offsetX := int32(rand.IntN(scatterRadius*2+1) - scatterRadius)
	offsetY := int32(rand.IntN(scatterRadius*2+1) - scatterRadius)
	return model.NewLocation(npcLoc.X+offsetX, npcLoc.Y+offsetY, npcLoc.Z, 0)
}

// resolveDropTemplate looks up the catalog definition for a dropped item,
// falling back to a generic etc-item template for unknown ids so a bad
// drop-table entry doesn't crash the kill.
func resolveDropTemplate(itemID int32, npcName string) *model.ItemTemplate {
	itemDef := data.GetItemDef(itemID)
	if itemDef == nil {
		slog.Warn("item template not found, using fallback", "itemID", itemID, "npc", npcName)
		return &model.ItemTemplate{
			ItemID:    itemID,
			Name:      "Unknown Item",
			Type:      model.ItemTypeEtcItem,
			Stackable: true,
		}
	}

	return &model.ItemTemplate{
		ItemID:      itemDef.ID(),
		Name:        itemDef.Name(),
		Type:        itemTypeFromString(itemDef.Type()),
		PAtk:        itemDef.PAtk(),
		AttackRange: itemDef.AttackRange(),
		PDef:        itemDef.PDef(),
		Weight:      itemDef.Weight(),
		Stackable:   itemDef.IsStackable(),
		Tradeable:   itemDef.IsTradeable(),
	}
}

// itemTypeFromString maps the data package's loose item-type string onto
// the model's typed ItemType enum.
func itemTypeFromString(s string) model.ItemType {
	switch s {
	case "Weapon":
		return model.ItemTypeWeapon
	case "Armor":
		return model.ItemTypeArmor
	default:
		return model.ItemTypeEtcItem
	}
}

// CombatMgr is the process-wide CombatManager, wired up by
// cmd/gameserver/main.go with real broadcast functions. Not safe for
// concurrent reassignment — tests that replace it must not run with
// t.Parallel().
var CombatMgr *CombatManager
