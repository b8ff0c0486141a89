// Package config provides YAML-based configuration loading and validation
// for the runner.
package config

// Config contains every tunable of the simulation.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Character CharacterConfig `yaml:"character"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Score     ScoreConfig     `yaml:"score"`
	Animation AnimationConfig `yaml:"animation"`
}

// FieldConfig defines the virtual play field, in world units.
// The terminal renderer scales these units down to cells.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GroundY    float64 `yaml:"ground_y"`     // y of the ground line, axis grows downward
	GroundWrap float64 `yaml:"ground_wrap"`  // scroll offset wraps to 0 past -ground_wrap
}

// PhysicsConfig defines vertical motion parameters for the character.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // added to velocity each tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // negative (upward) launch velocity
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // downward velocity clamp
}

// InsetConfig shrinks a visual bounding box into a forgiving hitbox.
type InsetConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// CharacterConfig defines the character's fixed horizontal position and
// sprite geometry. DuckHeight replaces Height while ducking.
type CharacterConfig struct {
	X          float64     `yaml:"x"`
	Width      float64     `yaml:"width"`
	Height     float64     `yaml:"height"`
	DuckHeight float64     `yaml:"duck_height"`
	Hitbox     InsetConfig `yaml:"hitbox"`
}

// ObstacleKindConfig fixes the size of one obstacle kind and the height of
// its bottom edge above the ground line (0 for ground obstacles).
type ObstacleKindConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Altitude float64 `yaml:"altitude"`
}

// ObstaclesConfig defines spawn spacing and per-kind geometry.
type ObstaclesConfig struct {
	MinGap      float64            `yaml:"min_gap"` // spawn countdown range, world units
	MaxGap      float64            `yaml:"max_gap"`
	Hitbox      InsetConfig        `yaml:"hitbox"`
	SmallCactus ObstacleKindConfig `yaml:"small_cactus"`
	LargeCactus ObstacleKindConfig `yaml:"large_cactus"`
	HighBird    ObstacleKindConfig `yaml:"high_bird"`
	LowBird     ObstacleKindConfig `yaml:"low_bird"`
}

// ScoreConfig defines scoring and the speed ramp.
type ScoreConfig struct {
	PerTick        float64 `yaml:"per_tick"`        // fixed increment, independent of frame time
	InitialSpeed   float64 `yaml:"initial_speed"`   // world units per tick
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedStep      float64 `yaml:"speed_step"`      // added when the ramp fires
	SpeedInterval  int     `yaml:"speed_interval"`  // ramp fires when floor(score) is a multiple
	MilestoneEvery int     `yaml:"milestone_every"` // audio chime interval in points
}

// AnimStateConfig describes the sprite animation of one motion state.
// FrameMillis of 0 means the state holds a static pose.
type AnimStateConfig struct {
	Frames      int     `yaml:"frames"`
	FrameMillis float64 `yaml:"frame_millis"`
}

// AnimationConfig holds one animation spec per motion state.
type AnimationConfig struct {
	Running AnimStateConfig `yaml:"running"`
	Jumping AnimStateConfig `yaml:"jumping"`
	Ducking AnimStateConfig `yaml:"ducking"`
	Dead    AnimStateConfig `yaml:"dead"`
}
