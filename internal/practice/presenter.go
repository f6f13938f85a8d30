package practice

// ResultView is the rendered outcome of a completed session: the score and
// feedback plus the template context the result screen shows alongside them.
type ResultView struct {
	Role     string   `json:"role"`
	Score    int      `json:"score"`
	Feedback string   `json:"feedback"`
	Tips     []string `json:"tips,omitempty"`
	// Actions the result screen offers; both delegate back to the
	// controller.
	Actions []string `json:"actions"`
}

const (
	ActionPracticeAgain    = "practice_again"
	ActionTryDifferentRole = "try_different_role"
)

// Presenter renders a controller's result. It holds no state and performs no
// mutation of its own; PracticeAgain and TryDifferentRole just delegate.
type Presenter struct {
	controller *Controller
}

func NewPresenter(controller *Controller) *Presenter {
	return &Presenter{controller: controller}
}

func (p *Presenter) Render() (*ResultView, error) {
	view := p.controller.View()
	if view.Mode != ModeResult || view.Result == nil {
		return nil, ErrNoActiveSession
	}
	return &ResultView{
		Role:     view.Role,
		Score:    view.Result.Score,
		Feedback: view.Result.Feedback,
		Tips:     view.Tips,
		Actions:  []string{ActionPracticeAgain, ActionTryDifferentRole},
	}, nil
}

func (p *Presenter) PracticeAgain() error {
	return p.controller.Retry()
}

func (p *Presenter) TryDifferentRole() {
	p.controller.Reselect()
}
