// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package java

import (
	"fmt"
	"strings"

	"github.com/MinjaMiladinovic/playwright-java/internal/gen"
)

const header = `/**
 * Copyright (c) Microsoft Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
`

// Emitter renders resolved interfaces as Java source units. Output is a
// pure function of the interface model and the options, so repeated runs
// over the same document are byte-identical.
type Emitter struct {
	pkg  string
	opts gen.Options
}

// NewEmitter creates an emitter targeting the given Java package.
func NewEmitter(pkg string, opts gen.Options) *Emitter {
	return &Emitter{pkg: pkg, opts: opts}
}

// Emit renders one interface: header, package and imports, the interface
// declaration, its scope's enums and nested classes, its events, then its
// methods with overloads.
func (e *Emitter) Emit(iface *gen.Interface) ([]byte, error) {
	var lines []string
	lines = append(lines,
		header,
		"package "+e.pkg+";",
		"",
		"import java.util.*;",
		"import java.util.function.BiConsumer;",
		"",
		"public interface "+iface.Name+" {")

	writeScope(&iface.Scope, "  ", false, &lines)
	for _, ev := range iface.Events {
		if err := e.writeEvent(ev, "  ", &lines); err != nil {
			return nil, err
		}
	}
	for _, m := range iface.Methods {
		writeMethod(m, "  ", &lines)
	}
	lines = append(lines, "}", "")

	return []byte(strings.Join(lines, "\n")), nil
}

// writeScope emits a scope's enums first, then its classes, in
// registration order.
func writeScope(s *gen.Scope, offset string, nested bool, lines *[]string) {
	for _, en := range s.Enums {
		writeEnum(en, offset, nested, lines)
	}
	for _, c := range s.Classes {
		writeClass(c, offset, nested, lines)
	}
}

func writeEnum(en *gen.EnumDef, offset string, nested bool, lines *[]string) {
	access := ""
	if nested {
		access = "public "
	}
	*lines = append(*lines, offset+access+"enum "+en.Name+" { "+strings.Join(en.Labels, ", ")+"}")
}

func writeClass(c *gen.ClassDef, offset string, nested bool, lines *[]string) {
	access := ""
	if nested {
		access = "public "
	}
	*lines = append(*lines, offset+access+"class "+c.Name+" {")
	body := offset + "  "

	writeScope(&c.Scope, body, true, lines)

	fieldAccess := "public "
	if c.Role == gen.RoleReturned {
		fieldAccess = "private "
	}
	for _, f := range c.Fields {
		*lines = append(*lines, body+fieldAccess+f.Type+" "+f.Name+";")
	}
	*lines = append(*lines, "")

	if c.Role == gen.RoleReturned {
		for _, f := range c.Fields {
			*lines = append(*lines,
				body+"public "+f.Type+" "+f.Name+"() {",
				body+"  return this."+f.Name+";",
				body+"}")
		}
	} else {
		writeBuilderMethods(c, body, lines)
	}
	*lines = append(*lines, offset+"}")
}

// writeBuilderMethods emits the fluent configuration surface of a supplied
// class. Classes nested in another class also get a constructor and a
// done() returning the enclosing builder, so configuration can chain back
// up; interface-owned classes have nothing to return to.
func writeBuilderMethods(c *gen.ClassDef, body string, lines *[]string) {
	if c.Outer != nil {
		*lines = append(*lines,
			body+c.Name+"() {",
			body+"}",
			body+"public "+c.Outer.Name+" done() {",
			body+"  return "+c.Outer.Name+".this;",
			body+"}",
			"")
	}
	for _, f := range c.Fields {
		if f.Class != nil {
			*lines = append(*lines,
				body+"public "+f.Type+" set"+toTitle(f.Name)+"() {",
				body+"  this."+f.Name+" = new "+f.Type+"();",
				body+"  return this."+f.Name+";")
		} else {
			*lines = append(*lines,
				body+"public "+c.Name+" with"+toTitle(f.Name)+"("+f.Type+" "+f.Name+") {",
				body+"  this."+f.Name+" = "+f.Name+";",
				body+"  return this;")
		}
		*lines = append(*lines, body+"}")
	}
}

func (e *Emitter) writeEvent(ev *gen.Event, offset string, lines *[]string) error {
	if !e.opts.EmitEvent(ev.Path) {
		return nil
	}
	templateArg := strings.ReplaceAll(ev.PayloadType, "void", "Void")
	switch ev.Info.Kind {
	case gen.EventWaitFor:
		*lines = append(*lines, offset+"Deferred<"+templateArg+"> waitFor"+ev.Info.Prefix+"();")
		return nil
	case gen.EventListener, gen.EventHandler:
		*lines = append(*lines,
			offset+"void add"+ev.Info.Prefix+"Listener(Listener<"+templateArg+"> listener);",
			offset+"void remove"+ev.Info.Prefix+"Listener(Listener<"+templateArg+"> listener);")
		return nil
	}
	return fmt.Errorf("%w %d for: %s", gen.ErrUnknownEventKind, ev.Info.Kind, ev.Path)
}

// writeMethod emits one overload per trailing optional parameter, shortest
// last, then the full declaration.
func writeMethod(m *gen.Method, offset string, lines *[]string) {
	for i := len(m.Params) - 1; i >= 0; i-- {
		if !m.Params[i].Optional {
			break
		}
		writeOverload(m, i, offset, lines)
	}
	*lines = append(*lines, offset+m.ReturnType+" "+m.Name+"("+paramList(m.Params)+");")
}

// writeOverload emits a default method taking the leading count parameters
// and delegating to the full method with the omitted ones defaulted to
// null.
func writeOverload(m *gen.Method, count int, offset string, lines *[]string) {
	params := paramList(m.Params[:count])
	var args []string
	for _, p := range m.Params[:count] {
		args = append(args, p.Name)
	}
	for range m.Params[count:] {
		args = append(args, "null")
	}
	returns := "return "
	if m.ReturnType == "void" {
		returns = ""
	}
	*lines = append(*lines,
		offset+"default "+m.ReturnType+" "+m.Name+"("+params+") {",
		offset+"  "+returns+m.Name+"("+strings.Join(args, ", ")+");",
		offset+"}")
}

func paramList(params []*gen.Param) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

func toTitle(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
