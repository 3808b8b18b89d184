// Package widget provides a minimal window tree that falagard looks can be
// applied to.
//
// A Window holds string properties (a standard set such as Text, Font and
// Alpha, plus any it is given with DefineProperty), a set of named children,
// event subscriptions and a recording.Buffer that receives the geometry of
// its look. Assigning a look through the LookNFeel property runs the
// look's clean-up and initialisation, so child widgets declared by the look
// are created and skinned recursively.
//
//	skins := falagard.NewManager()
//	skins.Register(buttonLook)
//
//	root := widget.New("Root", "root",
//	    widget.WithManager(skins),
//	    widget.WithDisplaySize(falagard.Sz(640, 480)))
//	btn, _ := root.AddChild("Button", "ok")
//	_ = btn.SetProperty(falagard.LookNFeelProperty, "Skin/Button")
//
//	screen := recording.NewBuffer()
//	_ = root.DrawTree(screen)
//
// Windows are not safe for concurrent use.
package widget
