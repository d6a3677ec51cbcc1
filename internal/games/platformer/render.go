package platformer

// RenderSink paints one frame. World.Render hands it the camera offset
// followed by every visible entity in back-to-front order: decorations,
// obstacles, collectibles, hostiles and finally the player.
type RenderSink interface {
	BeginFrame(cameraX float64)
	DrawDecoration(Decoration)
	DrawObstacle(Obstacle)
	DrawCollectible(Collectible)
	DrawHostile(Hostile)
	DrawPlayer(Player)
}

// Render feeds the current frame to sink. The player is omitted before the
// first start.
func (w *World) Render(sink RenderSink) {
	sink.BeginFrame(w.camera.X)
	for _, d := range w.level.Decorations {
		sink.DrawDecoration(d)
	}
	for _, o := range w.level.Obstacles {
		sink.DrawObstacle(o)
	}
	for _, c := range w.coins {
		sink.DrawCollectible(c)
	}
	for _, h := range w.hostiles {
		sink.DrawHostile(h)
	}
	if w.player != nil {
		sink.DrawPlayer(*w.player)
	}
}
