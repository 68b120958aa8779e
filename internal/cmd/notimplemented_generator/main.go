// notimplemented_generator generates backends/notimplemented/gen_ops.go: one method per operation of the
// backends.Ops interface, all returning an error wrapping backends.ErrNotImplemented.
//
// It is run with go generate from the backends/notimplemented directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"regexp"
	"strings"
	"text/template"

	"github.com/gomlx/mathcore/internal/backendparser"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

const genOpsFile = "gen_ops.go"

// methodsExcluded are written by hand in notimplemented.go.
var methodsExcluded = map[string]bool{"Name": true, "Capabilities": true}

// backendsTypes are the types declared in package backends that need to be qualified.
var backendsTypes = regexp.MustCompile(`\b(Buffer|Context|OpConfig|Capabilities)\b`)

type MethodInfo struct {
	Name       string
	Parameters string
	Outputs    string
	Returns    string
}

var opsTemplate = template.Must(template.New(genOpsFile).Parse(`
/***** File generated by ./internal/cmd/notimplemented_generator, based on backends.Ops interface. Don't edit it directly. *****/

package notimplemented

import (
	"github.com/gomlx/mathcore/backends"
)

{{- range .}}

// {{.Name}} implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) {{.Name}}({{.Parameters}}) {{.Outputs}} {
	return {{.Returns}}
}
{{- end}}
`))

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	klog.V(1).Info("notimplemented_generator:")
	rawMethods := must.M1(backendparser.ParseOps())
	var methods []MethodInfo
	for _, raw := range rawMethods {
		if methodsExcluded[raw.Name] {
			continue
		}
		if len(raw.Outputs) != 1 || raw.Outputs[0].Type != "error" {
			klog.Exitf("method Ops.%s must return only an error, got %+v", raw.Name, raw.Outputs)
		}
		params := make([]string, 0, len(raw.Parameters))
		for _, param := range raw.Parameters {
			params = append(params, fmt.Sprintf("%s %s", param.Name, backendsTypes.ReplaceAllString(param.Type, "backends.$1")))
		}
		methods = append(methods, MethodInfo{
			Name:       raw.Name,
			Parameters: strings.Join(params, ", "),
			Outputs:    "error",
			Returns:    fmt.Sprintf("backends.NotImplementedErrorf[T](backends.OpType%s, \"\")", raw.Name),
		})
	}

	curDir := must.M1(os.Getwd())
	fileName := path.Join(curDir, genOpsFile)
	f := must.M1(os.Create(fileName))
	must.M(opsTemplate.Execute(f, methods))
	must.M(f.Close())
	cmd := exec.Command("go", "fmt", fileName)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ notimplemented_generator: \tsuccessfully generated %s\n", fileName)
}
