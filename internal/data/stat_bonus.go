package data

import "math"

// statBonusCurve is a single attribute's exponential bonus curve:
// bonus(stat) = base ^ (stat - offset).
type statBonusCurve struct {
	base, offset float64
	table        [101]float64
}

func (c *statBonusCurve) build() {
	for i := 0; i <= 100; i++ {
		c.table[i] = math.Pow(c.base, float64(i)-c.offset)
	}
}

func (c *statBonusCurve) at(stat uint8) float64 {
	if stat > 100 {
		return c.table[100]
	}
	return c.table[stat]
}

// Per-attribute curves, one per Lineage II base stat. Constants come from
// the stock statBonus.xml table: each attribute scales a different set of
// combat stats off the same exponential shape.
var (
	strCurve = statBonusCurve{base: 1.036, offset: 34.845} // physical attack
	intCurve = statBonusCurve{base: 1.020, offset: 31.375} // magic attack
	dexCurve = statBonusCurve{base: 1.009, offset: 19.360} // accuracy, evasion, atk speed
	witCurve = statBonusCurve{base: 1.050, offset: 20.000} // casting speed, crit rate
	conCurve = statBonusCurve{base: 1.030, offset: 27.632} // HP, HP regen, resists
	menCurve = statBonusCurve{base: 1.010, offset: -0.060} // MP, MP regen, magic defense
)

// InitStatBonuses precomputes every attribute's 0-100 bonus table. Must run
// once before any GetXXXBonus call, normally from server startup.
func InitStatBonuses() {
	strCurve.build()
	intCurve.build()
	dexCurve.build()
	witCurve.build()
	conCurve.build()
	menCurve.build()
}

// GetSTRBonus returns the physical-attack bonus for a STR value, clamped to
// the table's upper bound for stat > 100.
func GetSTRBonus(stat uint8) float64 { return strCurve.at(stat) }

// GetINTBonus returns the magic-attack bonus for an INT value.
func GetINTBonus(stat uint8) float64 { return intCurve.at(stat) }

// GetDEXBonus returns the accuracy/evasion/attack-speed bonus for a DEX value.
func GetDEXBonus(stat uint8) float64 { return dexCurve.at(stat) }

// GetWITBonus returns the casting-speed/critical-rate bonus for a WIT value.
func GetWITBonus(stat uint8) float64 { return witCurve.at(stat) }

// GetCONBonus returns the HP/regen/resist bonus for a CON value.
func GetCONBonus(stat uint8) float64 { return conCurve.at(stat) }

// GetMENBonus returns the MP/regen/magic-defense bonus for a MEN value.
func GetMENBonus(stat uint8) float64 { return menCurve.at(stat) }
