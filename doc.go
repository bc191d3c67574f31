// Package aurora renders an animated single-page portfolio with [Ebitengine].
//
// A page is a vertical stack of sections (home, about, skills, projects,
// experience, contact) drawn over a fullscreen shader background. The
// package provides the pieces that make it feel alive: a frame clock, a
// pointer tracker and a scroll observer that coalesce input to one update
// per frame, a navigation state machine that hides the menu while scrolling
// down, and one-shot reveal animations with staggered children.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := aurora.DefaultConfig()
//	page := aurora.NewPage(cfg, aurora.DefaultLayout())
//	aurora.Run(page, aurora.RunConfig{
//		Title: cfg.Window.Title, Width: 1280, Height: 800,
//	})
//
// [Page] implements [ebiten.Game], so it can also be driven directly.
//
// # Frame loop
//
// Everything that animates registers with [FrameClock.OnTick]. Per frame the
// page feeds raw input into [PointerTracker.Move] and
// [ScrollObserver.Report], then calls [FrameClock.Advance]. Pending input is
// applied on the tick: later moves within a frame replace earlier ones, they
// are never queued.
//
// # Background
//
// [Background] draws a Kage shader whose uniforms follow the clock and the
// pointer. If the shader cannot be compiled or a draw fails, it switches to
// a static gradient for the rest of its life and reports the cause once via
// [Background.OnFallback]. No error ever reaches the page.
//
// # Navigation
//
// [ScrollObserver] derives a [Direction] per sample and resolves the active
// section as the first boundary containing offset+margin. [Navigator]
// combines both into a [NavState]: the menu is hidden exactly when the last
// sample moved down past the hide threshold.
//
// # Reveals
//
// [RevealAnimator] flips observed elements from unseen to revealed the first
// time they intersect the (inset) viewport. The transition is final. Child
// animations start after [Stagger.Delay], which depends only on the child's
// declared index.
//
// # Configuration
//
// [LoadConfig] reads TOML and applies AURORA_* environment overrides;
// [ReadLayout] reads the section layout from YAML. Logging goes through
// log/slog; see [SetLogger].
//
// # Scripted runs
//
// [LoadTestScript] and [Page.SetTestRunner] replay JSON scripts of moves,
// scrolls, clicks and screenshots for visual checks.
//
// [Ebitengine]: https://ebitengine.org
package aurora
