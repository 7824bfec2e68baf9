package renderers

import "github.com/lixenwraith/showcase/render"

// RegisterAll wires the page layers into the orchestrator in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewHeroRenderer(), render.PriorityHero)
	o.Register(NewSectionRenderer(), render.PrioritySections)
	o.Register(NewCardRenderer(), render.PriorityCards)
	o.Register(NewFooterRenderer(), render.PrioritySections)
	o.Register(NewRippleRenderer(), render.PriorityEffects)
	o.Register(NewHeaderRenderer(), render.PriorityHeader)
}
