package game

// Settings holds the read-only flags the engine and its callers consult.
// Only AutoStandOn21 changes engine behavior; the remaining flags drive
// presentation. Fields are toggled through named setters rather than
// dynamic lookup so every flag stays type-checked.
type Settings struct {
	AutoStandOn21     bool
	HintsEnabled      bool
	SoundEnabled      bool
	AnimationsEnabled bool
}

// DefaultSettings returns the default flag values.
func DefaultSettings() *Settings {
	return &Settings{
		AutoStandOn21:     true,
		HintsEnabled:      false,
		SoundEnabled:      true,
		AnimationsEnabled: true,
	}
}

// SetAutoStandOn21 sets whether reaching 21 on a hit stands automatically.
func (s *Settings) SetAutoStandOn21(v bool) { s.AutoStandOn21 = v }

// SetHintsEnabled sets whether basic-strategy hints are shown.
func (s *Settings) SetHintsEnabled(v bool) { s.HintsEnabled = v }

// SetSoundEnabled sets whether the UI plays sounds.
func (s *Settings) SetSoundEnabled(v bool) { s.SoundEnabled = v }

// SetAnimationsEnabled sets whether the UI staggers card reveals.
func (s *Settings) SetAnimationsEnabled(v bool) { s.AnimationsEnabled = v }
