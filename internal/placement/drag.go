package placement

import (
	"log"

	"radius-defense/internal/component"
	"radius-defense/internal/config"
	"radius-defense/internal/defs"
	"radius-defense/internal/entity"
	"radius-defense/internal/event"
	"radius-defense/internal/types"
	"radius-defense/internal/utils"
)

// LevelApplier brings a freshly placed tower up to the purchased upgrade levels.
type LevelApplier interface {
	ApplyCurrentLevels(category defs.TowerCategory, combat *component.Combat)
}

// DragHandler owns the preview tower of an in-flight drag gesture.
type DragHandler struct {
	ecs        *entity.ECS
	library    map[defs.TowerCategory]defs.TowerDefinition
	upgrades   LevelApplier
	dispatcher *event.Dispatcher
	bounds     Bounds
	dragged    types.EntityID
}

// NewDragHandler creates a handler. upgrades and dispatcher may be nil.
func NewDragHandler(ecs *entity.ECS, library map[defs.TowerCategory]defs.TowerDefinition,
	upgrades LevelApplier, dispatcher *event.Dispatcher, bounds Bounds) *DragHandler {
	return &DragHandler{
		ecs:        ecs,
		library:    library,
		upgrades:   upgrades,
		dispatcher: dispatcher,
		bounds:     bounds,
	}
}

// Bounds returns the placement area.
func (h *DragHandler) Bounds() Bounds { return h.bounds }

// IsValidPlacement reports whether a tower may stand at p.
func (h *DragHandler) IsValidPlacement(p utils.Vec2) bool {
	return h.bounds.Contains(p)
}

// Dragging reports whether a preview tower is being dragged.
func (h *DragHandler) Dragging() bool { return h.dragged != 0 }

// Dragged returns the preview tower ID, 0 when idle.
func (h *DragHandler) Dragged() types.EntityID { return h.dragged }

// BeginDrag creates a disabled preview tower of category at the snapped position.
// A drag already in flight is cancelled first.
func (h *DragHandler) BeginDrag(category defs.TowerCategory, at utils.Vec2) (types.EntityID, bool) {
	def, ok := h.library[category]
	if !ok {
		log.Printf("DragHandler: no definition for tower category %s", category)
		return 0, false
	}
	if h.Dragging() {
		h.Cancel()
	}

	snapped := utils.SnapToGrid(at)
	id := h.ecs.NewEntity()
	h.ecs.Positions[id] = &component.Position{X: snapped.X, Y: snapped.Y}
	h.ecs.Towers[id] = &component.Tower{Category: category, Preview: true}
	h.ecs.Combats[id] = &component.Combat{
		FireInterval:   def.Combat.FireInterval,
		BulletCount:    def.Combat.BulletCount,
		BulletSpeed:    def.Combat.BulletSpeed,
		BulletLifetime: def.Combat.BulletLifetime,
		KillDistance:   def.Combat.KillDistance,
		Range:          def.Combat.Range,
		Homing:         def.Combat.Homing,
	}
	previewColor := def.Color
	previewColor.A = config.PreviewAlpha
	h.ecs.Renderables[id] = &component.Renderable{
		Color:     previewColor,
		Radius:    config.TowerRadius,
		HasStroke: true,
	}
	h.dragged = id
	return id, true
}

// Drag moves the preview to the snapped world position and keeps it disabled.
func (h *DragHandler) Drag(world utils.Vec2) {
	if !h.Dragging() {
		return
	}
	pos, ok := h.ecs.Positions[h.dragged]
	if !ok {
		h.dragged = 0
		return
	}
	snapped := utils.SnapToGrid(world)
	pos.X, pos.Y = snapped.X, snapped.Y
	if tower, ok := h.ecs.Towers[h.dragged]; ok {
		tower.Enabled = false
	}
}

// EndDrag places the preview if it is inside the bounds, otherwise destroys it.
// Returns the tower ID and whether it was placed.
func (h *DragHandler) EndDrag() (types.EntityID, bool) {
	id := h.dragged
	if id == 0 {
		return 0, false
	}
	h.dragged = 0

	pos, hasPos := h.ecs.Positions[id]
	tower, hasTower := h.ecs.Towers[id]
	if !hasPos || !hasTower || !h.IsValidPlacement(utils.Vec2{X: pos.X, Y: pos.Y}) {
		h.discard(id)
		return id, false
	}

	if h.upgrades != nil {
		h.upgrades.ApplyCurrentLevels(tower.Category, h.ecs.Combats[id])
	}
	tower.Preview = false
	tower.Enabled = true
	if r, ok := h.ecs.Renderables[id]; ok {
		r.Color.A = 255
	}

	if h.dispatcher != nil {
		h.dispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	}
	return id, true
}

// Cancel discards the preview of an in-flight drag.
func (h *DragHandler) Cancel() {
	if id := h.dragged; id != 0 {
		h.dragged = 0
		h.discard(id)
	}
}

func (h *DragHandler) discard(id types.EntityID) {
	h.ecs.RemoveEntity(id)
	if h.dispatcher != nil {
		h.dispatcher.Dispatch(event.Event{Type: event.TowerDiscarded, Data: id})
	}
}
