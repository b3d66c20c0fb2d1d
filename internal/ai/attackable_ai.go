package ai

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/l2j-emu/aegis/internal/data"
	"github.com/l2j-emu/aegis/internal/model"
)

// AttackFunc is a callback to execute NPC attack on a target WorldObject.
// Injected by SpawnManager to avoid import cycle with CombatManager.
type AttackFunc func(monster *model.Monster, target *model.WorldObject)

// ScanFunc scans visible objects around position (x, y).
// Injected by SpawnManager to avoid import cycle with world package.
type ScanFunc func(x, y int32, fn func(*model.WorldObject) bool)

// GetObjectFunc looks up a WorldObject by objectID.
// Injected by SpawnManager to avoid import cycle with world package.
type GetObjectFunc func(objectID uint32) (*model.WorldObject, bool)

// NpcCastFunc is a callback to execute NPC skill cast on a target.
// Injected by SpawnManager. If nil, NPC skill casting is disabled.
type NpcCastFunc func(monster *model.Monster, target *model.WorldObject, skillID, skillLevel int32)

// MoveNpcFunc is a callback to move NPC toward a location.
// Injected by SpawnManager. If nil, NPC movement (chase/walk) is disabled.
type MoveNpcFunc func(npc *model.Npc, x, y, z int32)

const (
	randomWalkRate    = 30   // 1/30 chance of random walk per tick (~3.3%)
	maxDriftRange     = 300  // max distance NPC can drift from spawn while idle
	maxDriftRangeSq   = int64(maxDriftRange) * int64(maxDriftRange)
	chaseRangeNormal  = 1500 // max chase distance for regular monsters
	chaseRangeRaid    = 3000 // max chase distance for raid/grand bosses
	hateForgetChance  = 500  // 1/500 per tick chance to forget aggro at full HP
	attackRangeBase   = 100  // fallback physical attack range
	factionZTolerance = 600  // max Z-difference for a faction call to land
	attackTimeoutSpan = 2 * time.Minute
	defaultFactionRange = 300
)

// AttackableAI drives a single aggressive monster through an idle/active/
// attack state machine: it scans for targets while idle, accrues and decays
// hate while active, and while attacking picks between casting, chasing, and
// swinging depending on range and cooldowns.
type AttackableAI struct {
	monster   *model.Monster
	isRunning atomic.Bool

	// globalAggro starts at -10 (10-tick spawn immunity), counts up to 0.
	// Taking damage cancels the countdown immediately.
	globalAggro atomic.Int32

	// attackTimeout is the UnixMilli deadline after which an unproductive
	// attack state gives up and sends the NPC home.
	attackTimeout atomic.Int64

	// skillCooldowns maps skillID to the UnixMilli it next becomes usable.
	// Only ever touched from the single Tick() goroutine, so no lock.
	skillCooldowns map[int32]int64

	attackFunc    AttackFunc
	scanFunc      ScanFunc
	getObjectFunc GetObjectFunc
	castFunc      NpcCastFunc
	moveFunc      MoveNpcFunc
}

// NewAttackableAI creates a new AttackableAI controller for an aggressive monster.
func NewAttackableAI(
	monster *model.Monster,
	attackFunc AttackFunc,
	scanFunc ScanFunc,
	getObjectFunc GetObjectFunc,
) *AttackableAI {
	return &AttackableAI{
		monster:        monster,
		attackFunc:     attackFunc,
		scanFunc:       scanFunc,
		getObjectFunc:  getObjectFunc,
		skillCooldowns: make(map[int32]int64),
	}
}

// SetCastFunc sets the NPC skill cast callback.
func (ai *AttackableAI) SetCastFunc(fn NpcCastFunc) {
	ai.castFunc = fn
}

// SetMoveFunc sets the NPC movement callback.
func (ai *AttackableAI) SetMoveFunc(fn MoveNpcFunc) {
	ai.moveFunc = fn
}

// Start starts the AI controller, granting a 10-tick spawn immunity window.
func (ai *AttackableAI) Start() {
	ai.isRunning.Store(true)
	ai.globalAggro.Store(-10)
	ai.SetIntention(model.IntentionActive)
	ai.debug("attackable AI started", "npc", ai.monster.Name(), "objectID", ai.monster.ObjectID(), "aggroRange", ai.monster.AggroRange())
}

// Stop stops the AI controller and releases its aggro state.
func (ai *AttackableAI) Stop() {
	ai.isRunning.Store(false)
	ai.SetIntention(model.IntentionIdle)
	ai.monster.AggroList().Clear()
	ai.monster.ClearTarget()
	ai.debug("attackable AI stopped", "npc", ai.monster.Name(), "objectID", ai.monster.ObjectID())
}

// SetIntention sets AI intention on the underlying NPC.
func (ai *AttackableAI) SetIntention(intention model.Intention) {
	oldIntention := ai.monster.Intention()
	ai.monster.SetIntention(intention)
	if oldIntention != intention {
		ai.debug("attackable AI intention changed", "npc", ai.monster.Name(), "objectID", ai.monster.ObjectID(), "from", oldIntention, "to", intention)
	}
}

// CurrentIntention returns current AI intention.
func (ai *AttackableAI) CurrentIntention() model.Intention {
	return ai.monster.Intention()
}

// Npc returns the underlying NPC.
func (ai *AttackableAI) Npc() *model.Npc {
	return ai.monster.Npc
}

// debug logs at debug level only when AI debug logging is enabled, keeping
// every call site below from repeating the IsDebugEnabled guard.
func (ai *AttackableAI) debug(msg string, args ...any) {
	if IsDebugEnabled() {
		slog.Debug(msg, args...)
	}
}

// engageTarget switches the NPC onto targetID and arms a fresh attack
// timeout. Both damage reception and the active-state scan funnel through
// this when they pick up a new hate target.
func (ai *AttackableAI) engageTarget(targetID uint32) {
	ai.monster.SetTarget(targetID)
	ai.SetIntention(model.IntentionAttack)
	ai.attackTimeout.Store(time.Now().Add(attackTimeoutSpan).UnixMilli())
}

// disengage drops the current target and falls back to the active scan
// state. Used whenever thinkAttack decides its target is no longer valid.
func (ai *AttackableAI) disengage(targetID uint32) {
	if targetID != 0 {
		ai.monster.AggroList().Remove(targetID)
	}
	ai.monster.ClearTarget()
	ai.SetIntention(model.IntentionActive)
}

// NotifyDamage handles NPC receiving damage: it cancels spawn immunity, adds
// the attacker to the hate list, calls nearby faction members, and — if not
// already attacking — engages the most-hated target.
func (ai *AttackableAI) NotifyDamage(attackerID uint32, damage int32) {
	if !ai.isRunning.Load() || ai.monster.IsDead() {
		return
	}

	if ai.globalAggro.Load() < 0 {
		ai.globalAggro.Store(0)
	}

	hate := model.CalcHateValue(damage, ai.monster.Level())
	ai.monster.AggroList().AddHate(attackerID, hate)
	ai.monster.AggroList().AddDamage(attackerID, int64(damage))

	if ai.CurrentIntention() != model.IntentionAttack {
		if mostHated := ai.monster.AggroList().GetMostHated(); mostHated != 0 {
			ai.engageTarget(mostHated)
		}
	}

	ai.callFaction(attackerID)
	ai.debug("attackable AI notified of damage", "npc", ai.monster.Name(), "objectID", ai.monster.ObjectID(), "attackerID", attackerID, "damage", damage, "hate", hate)
}

// Tick performs one AI step. Called once per second by the tick manager.
func (ai *AttackableAI) Tick() {
	if !ai.isRunning.Load() || ai.monster.IsDead() {
		return
	}

	if g := ai.globalAggro.Load(); g < 0 {
		ai.globalAggro.Add(1)
	} else if g > 0 {
		ai.globalAggro.Add(-1)
	}

	switch ai.CurrentIntention() {
	case model.IntentionAttack:
		ai.thinkAttack()
	case model.IntentionActive, model.IntentionIdle:
		ai.thinkActive()
	}
}

// thinkActive scans for players, performs random walk, and checks hate decay
// while no target has been engaged yet.
func (ai *AttackableAI) thinkActive() {
	if ai.globalAggro.Load() < 0 {
		return // still within spawn immunity
	}

	ai.checkHateDecay()
	ai.tryRandomWalk()
	ai.checkReturnToSpawn()

	if ai.scanFunc != nil {
		ai.scanForAggro()
	}

	if ai.monster.AggroList().IsEmpty() {
		return
	}
	mostHated := ai.monster.AggroList().GetMostHated()
	if mostHated == 0 {
		return
	}
	ai.engageTarget(mostHated)
	ai.debug("attackable AI acquired target", "npc", ai.monster.Name(), "objectID", ai.monster.ObjectID(), "targetID", mostHated)
}

// scanForAggro adds a unit of hate for every living player found within the
// NPC's aggro radius.
func (ai *AttackableAI) scanForAggro() {
	npcLoc := ai.monster.Location()
	aggroRange := ai.monster.AggroRange()
	aggroRangeSq := int64(aggroRange) * int64(aggroRange)

	ai.scanFunc(npcLoc.X, npcLoc.Y, func(obj *model.WorldObject) bool {
		if obj.ObjectID() == ai.monster.ObjectID() {
			return true
		}
		player, ok := obj.Data.(*model.Player)
		if !ok || player.IsDead() {
			return true
		}
		if npcLoc.DistanceSquared(obj.Location()) > aggroRangeSq {
			return true
		}
		ai.monster.AggroList().AddHate(obj.ObjectID(), 1)
		return true
	})
}

// thinkAttack validates the current target, tries a skill cast, chases if
// out of range, and otherwise lands a physical attack.
func (ai *AttackableAI) thinkAttack() {
	if time.Now().UnixMilli() > ai.attackTimeout.Load() {
		ai.returnHome()
		return
	}

	targetID := ai.monster.AggroList().GetMostHated()
	if targetID == 0 {
		ai.disengage(0)
		return
	}
	ai.monster.SetTarget(targetID)

	if ai.getObjectFunc == nil {
		return
	}
	targetObj, found := ai.getObjectFunc(targetID)
	if !found || isTargetDead(targetObj) {
		ai.disengage(targetID)
		return
	}

	if ai.isTooFarFromSpawn() {
		ai.returnHome()
		return
	}

	npcLoc := ai.monster.Location()
	dist := math.Sqrt(float64(npcLoc.DistanceSquared(targetObj.Location())))
	atkRange := ai.getAttackRange()

	if ai.trySkillCast(targetObj, dist) {
		return
	}
	if dist > float64(atkRange) {
		ai.chaseTarget(targetObj)
		return
	}

	if ai.attackFunc != nil {
		ai.attackFunc(ai.monster, targetObj)
		ai.attackTimeout.Store(time.Now().Add(attackTimeoutSpan).UnixMilli())
	}
}

// usableSkill is an NPC skill that has cleared cooldown, range, and MP
// checks and is a candidate for trySkillCast's random pick.
type usableSkill struct {
	id, level int32
	tmpl      *data.SkillTemplate
}

// trySkillCast selects and casts a random usable NPC skill, reporting
// whether one was cast (the caller should then skip the physical attack).
func (ai *AttackableAI) trySkillCast(target *model.WorldObject, dist float64) bool {
	if ai.castFunc == nil {
		return false
	}

	npcDef := data.GetNpcDef(ai.monster.TemplateID())
	if npcDef == nil || len(npcDef.Skills()) == 0 {
		return false
	}

	now := time.Now().UnixMilli()
	var candidates []usableSkill
	for _, sk := range npcDef.Skills() {
		if readyAt, onCooldown := ai.skillCooldowns[sk.SkillID()]; onCooldown && now < readyAt {
			continue
		}
		tmpl := data.GetSkillTemplate(sk.SkillID(), sk.SkillLevel())
		if tmpl == nil {
			continue
		}
		if tmpl.CastRange > 0 && dist > float64(tmpl.CastRange) {
			continue
		}
		if tmpl.MpConsume > 0 && ai.monster.CurrentMP() < tmpl.MpConsume {
			continue
		}
		candidates = append(candidates, usableSkill{id: sk.SkillID(), level: sk.SkillLevel(), tmpl: tmpl})
	}
	if len(candidates) == 0 {
		return false
	}

	chosen := candidates[rand.IntN(len(candidates))]
	ai.castFunc(ai.monster, target, chosen.id, chosen.level)

	cooldown := max(int64(chosen.tmpl.ReuseDelay), 1000)
	ai.skillCooldowns[chosen.id] = now + cooldown

	ai.debug("NPC cast skill", "npc", ai.monster.Name(), "skill", chosen.tmpl.Name, "skillID", chosen.id, "level", chosen.level, "target", target.ObjectID())
	return true
}

// chaseTarget moves the NPC toward the target's current position.
func (ai *AttackableAI) chaseTarget(target *model.WorldObject) {
	if ai.moveFunc == nil {
		return
	}
	targetLoc := target.Location()
	ai.moveFunc(ai.monster.Npc, targetLoc.X, targetLoc.Y, targetLoc.Z)
	ai.debug("NPC chasing target", "npc", ai.monster.Name(), "targetID", target.ObjectID(), "targetX", targetLoc.X, "targetY", targetLoc.Y)
}

// callFaction adds minimal hate to nearby idle/active clan-mates so they
// join the fight against attackerID.
func (ai *AttackableAI) callFaction(attackerID uint32) {
	if ai.scanFunc == nil || ai.getObjectFunc == nil {
		return
	}

	npcDef := data.GetNpcDef(ai.monster.TemplateID())
	if npcDef == nil || len(npcDef.Clans()) == 0 {
		return
	}

	factionRange := npcDef.ClanHelpRange()
	if factionRange <= 0 {
		factionRange = defaultFactionRange
	}
	factionRangeSq := int64(factionRange) * int64(factionRange)

	npcLoc := ai.monster.Location()
	callerClans := npcDef.Clans()
	callerID := npcDef.ID()

	ai.scanFunc(npcLoc.X, npcLoc.Y, func(obj *model.WorldObject) bool {
		if obj.ObjectID() == ai.monster.ObjectID() {
			return true
		}
		nearbyMonster, ok := obj.Data.(*model.Monster)
		if !ok || nearbyMonster.IsDead() {
			return true
		}
		objLoc := obj.Location()
		if npcLoc.DistanceSquared(objLoc) > factionRangeSq {
			return true
		}
		if zDiff := npcLoc.Z - objLoc.Z; zDiff > factionZTolerance || -zDiff > factionZTolerance {
			return true
		}
		intent := nearbyMonster.Intention()
		if intent != model.IntentionIdle && intent != model.IntentionActive {
			return true
		}
		nearbyDef := data.GetNpcDef(nearbyMonster.TemplateID())
		if nearbyDef == nil || !nearbyDef.IsClan(callerClans) || nearbyDef.IgnoresNpcID(callerID) {
			return true
		}

		nearbyMonster.AggroList().AddHate(attackerID, 1)
		ai.debug("faction call", "caller", ai.monster.Name(), "helper", nearbyMonster.Name(), "attacker", attackerID)
		return true
	})
}

// tryRandomWalk occasionally wanders the NPC within maxDriftRange of spawn.
func (ai *AttackableAI) tryRandomWalk() {
	if ai.moveFunc == nil {
		return
	}
	spawn := ai.monster.Spawn()
	if spawn == nil {
		return
	}
	if rand.IntN(randomWalkRate) != 0 {
		return
	}

	spawnLoc := spawn.Location()
	dx := rand.Int32N(int32(maxDriftRange)*2+1) - int32(maxDriftRange)
	dy := rand.Int32N(int32(maxDriftRange)*2+1) - int32(maxDriftRange)
	newX, newY := spawnLoc.X+dx, spawnLoc.Y+dy

	ai.moveFunc(ai.monster.Npc, newX, newY, spawnLoc.Z)
	ai.debug("NPC random walk", "npc", ai.monster.Name(), "toX", newX, "toY", newY)
}

// checkHateDecay clears the aggro list when the NPC has sat at full HP/MP
// long enough to roll the 1/500 forget chance.
func (ai *AttackableAI) checkHateDecay() {
	if ai.monster.AggroList().IsEmpty() {
		return
	}
	if ai.monster.CurrentHP() < ai.monster.MaxHP() || ai.monster.CurrentMP() < ai.monster.MaxMP() {
		return
	}
	if rand.IntN(hateForgetChance) != 0 {
		return
	}

	ai.monster.AggroList().Clear()
	ai.monster.ClearTarget()
	ai.debug("NPC hate decayed — cleared aggro list", "npc", ai.monster.Name(), "objectID", ai.monster.ObjectID())
}

// checkReturnToSpawn walks the NPC back toward spawn once it has idly
// drifted beyond maxDriftRange.
func (ai *AttackableAI) checkReturnToSpawn() {
	if ai.moveFunc == nil {
		return
	}
	spawn := ai.monster.Spawn()
	if spawn == nil {
		return
	}

	npcLoc := ai.monster.Location()
	spawnLoc := spawn.Location()
	if npcLoc.DistanceSquared(spawnLoc) <= maxDriftRangeSq {
		return
	}

	ai.moveFunc(ai.monster.Npc, spawnLoc.X, spawnLoc.Y, spawnLoc.Z)
	ai.debug("NPC returning to spawn (idle drift)", "npc", ai.monster.Name())
}

// isTooFarFromSpawn reports whether the NPC has chased its target beyond
// the maximum distance allowed from its spawn point (raised for raid/grand
// bosses).
func (ai *AttackableAI) isTooFarFromSpawn() bool {
	spawn := ai.monster.Spawn()
	if spawn == nil {
		return false
	}

	maxDist := int64(chaseRangeNormal)
	if data.IsRaidBoss(ai.monster.TemplateID()) || data.IsGrandBoss(ai.monster.TemplateID()) {
		maxDist = int64(chaseRangeRaid)
	}

	npcLoc := ai.monster.Location()
	spawnLoc := spawn.Location()
	return npcLoc.DistanceSquared(spawnLoc) > maxDist*maxDist
}

// returnHome clears aggro, restores full HP/MP, and walks the NPC back to
// its spawn point.
func (ai *AttackableAI) returnHome() {
	ai.monster.AggroList().Clear()
	ai.monster.ClearTarget()
	ai.SetIntention(model.IntentionActive)

	ai.monster.SetCurrentHP(ai.monster.MaxHP())
	ai.monster.SetCurrentMP(ai.monster.MaxMP())

	if spawn := ai.monster.Spawn(); spawn != nil && ai.moveFunc != nil {
		spawnLoc := spawn.Location()
		ai.moveFunc(ai.monster.Npc, spawnLoc.X, spawnLoc.Y, spawnLoc.Z)
	}
	ai.debug("NPC returning home", "npc", ai.monster.Name(), "objectID", ai.monster.ObjectID())
}

// getAttackRange returns the physical attack range for this NPC.
func (ai *AttackableAI) getAttackRange() int32 {
	npcDef := data.GetNpcDef(ai.monster.TemplateID())
	if npcDef != nil && npcDef.AtkRange() > 0 {
		return npcDef.AtkRange()
	}
	return attackRangeBase
}

// isTargetDead reports whether the target WorldObject's creature is dead.
func isTargetDead(obj *model.WorldObject) bool {
	if player, ok := obj.Data.(*model.Player); ok {
		return player.IsDead()
	}
	return false
}
