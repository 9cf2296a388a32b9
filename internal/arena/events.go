package arena

// RoundStarted is emitted at the top of each combat round
type RoundStarted struct {
	FightID string
	Round   int
}

// AttackLanded is emitted when an attack roll beats the defender's guard
type AttackLanded struct {
	FightID  string
	Round    int
	Attacker string
	Defender string
	Roll     int // the attack roll, bonus included
	Damage   int
	HPLeft   int // defender hit points after the damage
}

// AttackMissed is emitted when an attack roll falls short of the defender's
// guard
type AttackMissed struct {
	FightID  string
	Round    int
	Attacker string
	Defender string
	Roll     int
}

// FighterDowned is emitted when a fighter's hit points reach zero
type FighterDowned struct {
	FightID string
	Round   int
	Name    string
	By      string
}

// FightEnded is emitted once per fight with the final outcome
type FightEnded struct {
	FightID string
	Winner  string
	Loser   string
	Rounds  int
}
