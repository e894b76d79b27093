package behavior

import (
	"github.com/fcblfcbasel1/Project-Informatik/ecs"
	"github.com/jakecoffman/cp"
)

const (
	harvestTimer  = "harvest"
	recoveryTimer = "recover"
)

// CollisionResponse applies the collision policy to the outcomes the
// collision engine delivers for its entity. Every rule is checked on its
// own, so an entity carrying several tags triggers several effects.
type CollisionResponse struct{}

func NewCollisionResponse() *CollisionResponse {
	return &CollisionResponse{}
}

func (c *CollisionResponse) Kind() ecs.BehaviorKind {
	return ecs.BehaviorCollision
}

// Update does nothing; work happens in Respond.
func (c *CollisionResponse) Update(*ecs.World, *ecs.Entity) {}

func (c *CollisionResponse) Respond(w *ecs.World, out *ecs.Outcome) {
	if out == nil || out.Self == nil || out.Other == nil {
		return
	}
	self, other := out.Self, out.Other
	if other.Kind == ecs.KindPlayer {
		return
	}
	tuning := w.Tuning()

	if other.HasTag(ecs.TagWorld) || other.HasTag(ecs.TagForest) {
		pushOut(self, out.Penetration)
	}

	if other.HasTag(ecs.TagPickups) && w.Destroy(other) {
		pay(w, tuning.PickupReward)
		w.Logger().Debug().Stringer("pickup", other).Int("money", amount(w)).Msg("collected")
	}

	if other.HasTag(ecs.TagForest) && w.Input().Held(tuning.ActionKey) {
		harvest(w, other, tuning)
	}

	if other.HasTag(ecs.TagCave) {
		w.RequestWorldToggle()
	}

	// Enemies only hurt the player; enemies touching each other just
	// separate.
	if other.HasTag(ecs.TagEnemy) && other.CanAttack && self == w.Player() {
		attack(w, other, tuning)
	}
}

func pushOut(e *ecs.Entity, pen cp.Vector) {
	axis := ecs.Resolve(e, pen)
	if axis != ecs.AxisY || pen.Y <= 0 {
		return
	}
	if g, ok := ecs.Lookup[*Gravity](e.Pipeline, ecs.BehaviorGravity); ok {
		g.Land()
	}
}

// harvest starts the chopping countdown for a tree. A tree already being
// chopped is left alone.
func harvest(w *ecs.World, tree *ecs.Entity, tuning ecs.Tuning) {
	if w.TimerFor(tree, harvestTimer) != nil {
		return
	}
	w.Countdown(tree, harvestTimer, tuning.HarvestTicks, tuning.TickFrames, func(w *ecs.World, tree *ecs.Entity) {
		if !w.Destroy(tree) {
			return
		}
		pay(w, w.Tuning().HarvestReward)
		w.Logger().Debug().Stringer("tree", tree).Int("money", amount(w)).Msg("harvested")
	})
	w.Logger().Debug().Stringer("tree", tree).Int("ticks", tuning.HarvestTicks).Msg("harvest started")
}

// attack lets an enemy hit the player once, then slows the enemy until its
// recovery timer restores it.
func attack(w *ecs.World, enemy *ecs.Entity, tuning ecs.Tuning) {
	enemy.CanAttack = false

	if health := w.Health(); health != nil {
		health.Attack(tuning.EnemyDamage)
		w.Events().Push(ecs.Event{Type: ecs.EventUIRefresh})
		if health.Health() <= 0 {
			health.Die()
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied})
			w.Logger().Info().Stringer("enemy", enemy).Msg("player died")
			return
		}
	}

	enemy.Speed = tuning.EnemySlowSpeed
	w.After(enemy, recoveryTimer, tuning.EnemyRecoveryFrames, func(_ *ecs.World, enemy *ecs.Entity) {
		enemy.Speed = enemy.BaseSpeed
		enemy.CanAttack = true
	})
}

func pay(w *ecs.World, reward int) {
	money := w.Money()
	if money == nil {
		return
	}
	money.Increase(reward)
	w.Events().Push(ecs.Event{Type: ecs.EventUIRefresh, Data: money.Amount()})
}

func amount(w *ecs.World) int {
	if money := w.Money(); money != nil {
		return money.Amount()
	}
	return 0
}
