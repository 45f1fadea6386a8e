package levels

// Builtin returns the bundled campaign in play order.
func Builtin() []Plan {
	return []Plan{
		{
			ID:   "first-steps",
			Name: "First Steps",
			Rows: []string{
				"                                      ",
				"                                      ",
				"                             o        ",
				"                           xxxxx      ",
				"                  o                   ",
				"                xxxxx                 ",
				"        o                          o  ",
				"  @   xxxxx                   xxxxxxx ",
				"xxxxxxxxxxxxx      xxxxxxxxxxxxxxxxxxx",
				"xxxxxxxxxxxxx!!!!!!xxxxxxxxxxxxxxxxxxx",
			},
		},
		{
			ID:   "lava-moat",
			Name: "Lava Moat",
			Rows: []string{
				"x                                          x",
				"x                                          x",
				"x                  o                       x",
				"x                xxxxx            |        x",
				"x    o                                 o   x",
				"x  xxxxx     =                      xxxxxxxx",
				"x                                          x",
				"x @                   o                    x",
				"xxxxxxx!!!!!!!xxxxxxxxxxxxxx!!!!!!!xxxxxxxxx",
				"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			},
		},
		{
			ID:   "dripping-cave",
			Name: "Dripping Cave",
			Rows: []string{
				"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
				"x       v         v          v             x",
				"x                                          x",
				"x                              o           x",
				"x            o               xxxxx         x",
				"x          xxxxx                           x",
				"x  o                    o             o    x",
				"x xxx                 xxxxx        xxxxxxx x",
				"x   @                                      x",
				"xxxxxxxxxxxxxxx!!!!!xxxxxxxxxxxx!!!xxxxxxxxx",
			},
		},
		{
			ID:   "dog-days",
			Name: "Dog Days",
			Rows: []string{
				"                                              ",
				"                                              ",
				"                      o                       ",
				"                    xxxxx                     ",
				"                                              ",
				"         o                          o         ",
				"       xxxxx      d           d   xxxxx       ",
				"  @                                        o  ",
				"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			},
		},
		{
			ID:   "the-climb",
			Name: "The Climb",
			Rows: []string{
				"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
				"x              o             x",
				"x            xxxxx     v     x",
				"x                            x",
				"x   o                    o   x",
				"x xxxxx      =         xxxxx x",
				"x                            x",
				"x         o        o         x",
				"x       xxxx     xxxx        x",
				"x                            x",
				"x  |                     o   x",
				"x xxxx    d           xxxxxx x",
				"x                            x",
				"x @     o                    x",
				"xxxxxxxxxxxx!!!!!!xxxxxxxxxxxx",
			},
		},
	}
}
