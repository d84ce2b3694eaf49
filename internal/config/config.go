// Package config provides YAML-based game configuration loading and
// scroll-speed profiles for the runner.
package config

// RunnerConfig contains all configuration for the runner game.
// Distances are in world units (the world is World.Width × World.Height);
// times are in ticks.
type RunnerConfig struct {
	World     RunnerWorld     `yaml:"world"`
	Physics   RunnerPhysics   `yaml:"physics"`
	Character RunnerCharacter `yaml:"character"`
	Spawn     RunnerSpawn     `yaml:"spawn"`
	Scoring   RunnerScoring   `yaml:"scoring"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Goal      GoalConfig      `yaml:"goal"`
	Labels    RunnerLabels    `yaml:"labels"`
}

// RunnerWorld defines the fixed simulation space.
type RunnerWorld struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Ground          float64 `yaml:"ground"`           // Y of the ground line
	BackgroundWidth float64 `yaml:"background_width"` // Scroll distance before the background wraps
}

// RunnerPhysics defines kinematics constants.
type RunnerPhysics struct {
	Gravity       float64 `yaml:"gravity"`        // Added to vertical velocity every tick
	JumpImpulse   float64 `yaml:"jump_impulse"`   // Vertical velocity set by a jump (negative = up)
	GroundSpeed   float64 `yaml:"ground_speed"`   // Leftward speed of obstacles and coins
	AirplaneSpeed float64 `yaml:"airplane_speed"` // Leftward speed of airplanes
}

// RunnerCharacter defines the character's placement and collision boxes.
type RunnerCharacter struct {
	X              float64 `yaml:"x"`
	StandHeight    float64 `yaml:"stand_height"` // Sprite height while standing or jumping
	DuckHeight     float64 `yaml:"duck_height"`  // Sprite height while ducking
	AnimationSpeed int     `yaml:"animation_speed"`
	StandBox       Box     `yaml:"stand_box"`
	DuckBox        Box     `yaml:"duck_box"`
}

// Box is a collision box relative to an entity's top-left corner.
type Box struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// RunnerSpawn defines spawn cadences and placement.
type RunnerSpawn struct {
	ObstacleInterval IntRange `yaml:"obstacle_interval"`
	ObstacleOffset   IntRange `yaml:"obstacle_offset"` // Added to world width for spawn x
	CoinInterval     IntRange `yaml:"coin_interval"`
	CoinOffset       IntRange `yaml:"coin_offset"`
	CoinBand         IntRange `yaml:"coin_band"` // Height above ground of the coin's top edge
	PremiumCooldown  int      `yaml:"premium_cooldown"`
	PremiumChance    float64  `yaml:"premium_chance"`
	AirplaneInterval IntRange `yaml:"airplane_interval"`
	AirplaneOffset   int      `yaml:"airplane_offset"`
	AirplaneAltitude IntRange `yaml:"airplane_altitude"`
}

// RunnerScoring defines score rewards.
type RunnerScoring struct {
	OrdinaryValue int `yaml:"ordinary_value"`
	PremiumValue  int `yaml:"premium_value"`
	AirplaneBonus int `yaml:"airplane_bonus"`
	TimeInterval  int `yaml:"time_interval"` // Ticks per point of time-based score
}

// GoalConfig defines the optional coin-collection win condition.
// A zero target disables the goal.
type GoalConfig struct {
	Ordinary int `yaml:"ordinary"`
	Premium  int `yaml:"premium"`
}

// Enabled reports whether the goal ends sessions.
func (g GoalConfig) Enabled() bool {
	return g.Ordinary > 0 || g.Premium > 0
}

// RunnerLabels are the display names of the two coin tiers.
type RunnerLabels struct {
	Ordinary string `yaml:"ordinary"`
	Premium  string `yaml:"premium"`
}

// ScrollConfig defines how fast the background layer moves.
type ScrollConfig struct {
	Profile    ScrollProfile `yaml:"profile"`
	Parallax   float64       `yaml:"parallax"`   // Fraction of the scroll speed applied to the background
	Multiplier float64       `yaml:"multiplier"` // Applied by the performance profile
	Ramp       float64       `yaml:"ramp"`       // Added per tick by the ramp profile
}

// ScrollProfile names a background scroll behavior.
type ScrollProfile string

const (
	ScrollFixed       ScrollProfile = "fixed"
	ScrollPerformance ScrollProfile = "performance"
	ScrollRamp        ScrollProfile = "ramp"
)

// ParseScrollProfile validates a profile name. Empty means "keep the config's value".
func ParseScrollProfile(name string) (ScrollProfile, bool) {
	switch ScrollProfile(name) {
	case ScrollFixed, ScrollPerformance, ScrollRamp:
		return ScrollProfile(name), true
	case "":
		return "", true
	default:
		return "", false
	}
}
