package game

type GameController struct {
	service GameService
}

func NewGameController(service GameService) *GameController {
	return &GameController{service: service}
}

// StartGame runs a game to completion and returns how it ended. over is
// false when the player quit before winning or losing.
func (c *GameController) StartGame(rows, cols, mines int) (over bool, result Result, err error) {
	if err := c.service.InitGame(rows, cols, mines); err != nil {
		return false, Lost, err
	}
	over, result = c.service.Result()
	return over, result, nil
}

func (c *GameController) TerminateGame() {
	log.Info("terminating the game")
	c.service.Stop()
}
