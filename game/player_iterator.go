package game

// PlayerIterator owns the seats and the turn cycle over them.
type PlayerIterator struct {
	controllers []*playerController
	cycler      *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	controllers := make([]*playerController, 0, len(players))
	for _, player := range players {
		controllers = append(controllers, newPlayerController(player))
	}
	return &PlayerIterator{
		controllers: controllers,
		cycler:      NewCycler(len(players)),
	}
}

func (i *PlayerIterator) Count() int {
	return len(i.controllers)
}

func (i *PlayerIterator) Current() *playerController {
	return i.controllers[i.cycler.Current()]
}

func (i *PlayerIterator) CurrentIndex() int {
	return i.cycler.Current()
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

// ForEach visits every seat in seating order, regardless of the
// current direction of play.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	for _, controller := range i.controllers {
		function(controller)
	}
}

func (i *PlayerIterator) Next() *playerController {
	return i.controllers[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}
