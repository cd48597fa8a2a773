// Package cfg wires a hierarchical configuration tree into a Fx application.
//
// NewApp loads every configured source (YAML files, in-memory documents, then
// environment variables) into a *tree.Node and supplies it to the container together
// with a config.Decoder and the application logger. Sections requested with WithView
// are supplied as *tree.View values tagged with their name:
//
//	app := cfg.NewApp(
//	    cfg.WithConfigFile("app.yaml"),
//	    cfg.WithEnvPrefix("APP"),
//	    cfg.WithView("db", "services/db"),
//	    cfg.WithModules(fx.Invoke(fx.Annotate(
//	        func(db *tree.View) { ... },
//	        fx.ParamTags(`name:"db"`),
//	    ))),
//	)
//
// config.Provider decodes a section into a struct for modules that prefer typed settings.
package cfg
