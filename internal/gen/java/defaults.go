// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package java

import "github.com/MinjaMiladinovic/playwright-java/internal/gen"

// DefaultOptions returns the operator tables for the current api.json.
// They are plain values; callers may extend the mapping table (e.g. from
// project configuration) before building interfaces.
func DefaultOptions() gen.Options {
	return gen.Options{
		Mappings:       defaultMappings(),
		Events:         defaultEvents(),
		EventAllowlist: defaultEventAllowlist(),
		MethodRenames:  defaultMethodRenames(),
	}
}

// defaultMethodRenames remaps method names that collide with Java keywords
// or depend on JavaScript idioms that read poorly in Java.
func defaultMethodRenames() map[string]string {
	return map[string]string{
		"continue": "continue_",
		"$eval":    "evalOnSelector",
		"$$eval":   "evalOnSelectorAll",
		"$":        "querySelector",
		"$$":       "querySelectorAll",
		"goto":     "navigate",
	}
}

func defaultMappings() map[string]gen.Mapping {
	mappings := map[string]gen.Mapping{
		"Page.emulateMedia.options.media": {
			From: `null|"screen"|"print"`, To: "Media"},
		"Page.emulateMedia.options.colorScheme": {
			From: `null|"dark"|"light"|"no-preference"`, To: "ColorScheme"},
		"Browser.newContext.options.colorScheme": {
			From: `"dark"|"light"|"no-preference"`, To: "ColorScheme"},
		"Browser.newPage.options.colorScheme": {
			From: `"dark"|"light"|"no-preference"`, To: "ColorScheme"},

		"Page.screenshot.options.type": {
			From: `"png"|"jpeg"`, To: "ScreenshotType"},
		"ElementHandle.screenshot.options.type": {
			From: `"png"|"jpeg"`, To: "ScreenshotType"},

		"Browser.newContext.options.viewport": {
			From: "null|Object", To: "Viewport"},
		"Browser.newPage.options.viewport": {
			From: "null|Object", To: "Viewport"},
		"Page.pdf.options.margin": {
			From: "Object", To: "Margin"},

		// Route matchers are unions over string, RegExp and predicate
		// functions; the Java API accepts the string form only.
		"Page.route.url": {
			From: "string|RegExp|function(URL):boolean", To: "String"},
		"Page.unroute.url": {
			From: "string|RegExp|function(URL):boolean", To: "String"},
		"BrowserContext.route.url": {
			From: "string|RegExp|function(URL):boolean", To: "String"},
		"BrowserContext.unroute.url": {
			From: "string|RegExp|function(URL):boolean", To: "String"},

		// Geolocation coordinates must be double, not the default int
		// that number would map to, so the class is defined directly.
		"Browser.newContext.options.geolocation": {
			From: "Object", To: "Geolocation", Define: defineGeolocation},
		"Browser.newPage.options.geolocation": {
			From: "Object", To: "Geolocation", Define: defineGeolocation},
		"BrowserContext.setGeolocation.geolocation": {
			From: "null|Object", To: "Geolocation", Define: defineGeolocation},
	}

	button := gen.Mapping{From: `"left"|"right"|"middle"`, To: "Button"}
	for _, path := range []string{
		"Page.click.options.button",
		"Page.dblclick.options.button",
		"Frame.click.options.button",
		"Frame.dblclick.options.button",
		"ElementHandle.click.options.button",
		"ElementHandle.dblclick.options.button",
		"Mouse.click.options.button",
		"Mouse.down.options.button",
		"Mouse.up.options.button",
	} {
		mappings[path] = button
	}

	waitUntil := gen.Mapping{
		From: `"load"|"domcontentloaded"|"networkidle"`, To: "WaitUntilState"}
	for _, path := range []string{
		"Page.goto.options.waitUntil",
		"Page.goBack.options.waitUntil",
		"Page.goForward.options.waitUntil",
		"Page.reload.options.waitUntil",
		"Page.setContent.options.waitUntil",
		"Page.waitForNavigation.options.waitUntil",
		"Frame.goto.options.waitUntil",
		"Frame.setContent.options.waitUntil",
		"Frame.waitForNavigation.options.waitUntil",
	} {
		mappings[path] = waitUntil
	}

	selectorState := gen.Mapping{
		From: `"attached"|"detached"|"visible"|"hidden"`, To: "WaitForSelectorState"}
	for _, path := range []string{
		"Page.waitForSelector.options.state",
		"Frame.waitForSelector.options.state",
		"ElementHandle.waitForSelector.options.state",
	} {
		mappings[path] = selectorState
	}

	return mappings
}

func defineGeolocation(scope *gen.Scope) {
	scope.AddClass(&gen.ClassDef{
		Name: "Geolocation",
		Role: gen.RoleSupplied,
		Fields: []gen.FieldDef{
			{Name: "latitude", Type: "double"},
			{Name: "longitude", Type: "double"},
			{Name: "accuracy", Type: "double"},
		},
	})
}

func defaultEvents() map[string]gen.EventInfo {
	return map[string]gen.EventInfo{
		"Browser.disconnected":                    {Prefix: "Disconnected", Kind: gen.EventWaitFor},
		"BrowserContext.page":                     {Prefix: "Page", Kind: gen.EventWaitFor},
		"Page.console":                            {Prefix: "Console", Kind: gen.EventListener},
		"Page.crash":                              {Prefix: "Crash", Kind: gen.EventWaitFor},
		"Page.dialog":                             {Prefix: "Dialog", Kind: gen.EventHandler},
		"Page.domcontentloaded":                   {Prefix: "DomContentLoaded", Kind: gen.EventWaitFor},
		"Page.download":                           {Prefix: "Download", Kind: gen.EventWaitFor},
		"Page.filechooser":                        {Prefix: "FileChooser", Kind: gen.EventHandler},
		"Page.frameattached":                      {Prefix: "FrameAttached", Kind: gen.EventWaitFor},
		"Page.framedetached":                      {Prefix: "FrameDetached", Kind: gen.EventWaitFor},
		"Page.framenavigated":                     {Prefix: "FrameNavigated", Kind: gen.EventWaitFor},
		"Page.load":                               {Prefix: "Load", Kind: gen.EventWaitFor},
		"Page.pageerror":                          {Prefix: "Error", Kind: gen.EventListener},
		"Page.popup":                              {Prefix: "Popup", Kind: gen.EventWaitFor},
		"Page.request":                            {Prefix: "Request", Kind: gen.EventWaitFor},
		"Page.requestfailed":                      {Prefix: "RequestFailed", Kind: gen.EventWaitFor},
		"Page.requestfinished":                    {Prefix: "RequestFinished", Kind: gen.EventWaitFor},
		"Page.response":                           {Prefix: "Response", Kind: gen.EventWaitFor},
		"Page.worker":                             {Prefix: "Worker", Kind: gen.EventWaitFor},
		"Worker.close":                            {Prefix: "Close", Kind: gen.EventWaitFor},
		"ChromiumBrowser.disconnected":            {Prefix: "Disconnected", Kind: gen.EventWaitFor},
		"ChromiumBrowserContext.backgroundpage":   {Prefix: "BackgroundPage", Kind: gen.EventWaitFor},
		"ChromiumBrowserContext.serviceworker":    {Prefix: "ServiceWorker", Kind: gen.EventWaitFor},
		"ChromiumBrowserContext.page":             {Prefix: "Page", Kind: gen.EventWaitFor},
		"FirefoxBrowser.disconnected":             {Prefix: "Disconnected", Kind: gen.EventWaitFor},
		"WebKitBrowser.disconnected":              {Prefix: "Disconnected", Kind: gen.EventWaitFor},
	}
}

// defaultEventAllowlist gates event emission while the event API settles.
// TODO: drop the gate once the event API is stable.
func defaultEventAllowlist() map[string]bool {
	return map[string]bool{
		"Page.console": true,
		"Page.popup":   true,
	}
}
