package preview

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/schemer/internal/field"
)

func leaf(key string, t field.Type) *field.Node {
	return field.CreateNodeBuilder(key, t).Build()
}

func nested(key string, children ...*field.Node) *field.Node {
	return field.CreateNodeBuilder(key, field.Object).WithChildren(children...).Build()
}

func compact(obj *Object) string {
	out, err := JSON(obj, 0)
	Expect(err).NotTo(HaveOccurred())
	return string(out)
}

var _ = Describe("Derive", func() {
	It("should derive an empty object from no fields", func() {
		Expect(compact(Derive(nil))).To(Equal(`{}`))
		Expect(compact(Derive([]*field.Node{}))).To(Equal(`{}`))
	})

	It("should use the default of each type in field order", func() {
		obj := Derive(field.Sample())
		Expect(compact(obj)).To(Equal(`{"name":"","age":0,"profile":{"bio":""}}`))
		Expect(obj.Keys()).To(Equal([]string{"name", "age", "profile"}))
	})

	It("should let the later duplicate win", func() {
		obj := Derive([]*field.Node{leaf("x", field.String), leaf("x", field.Number)})
		Expect(compact(obj)).To(Equal(`{"x":0}`))
	})

	It("should keep the first position of a duplicate key", func() {
		obj := Derive([]*field.Node{
			leaf("x", field.String),
			leaf("y", field.String),
			nested("x", leaf("z", field.Number)),
		})
		Expect(compact(obj)).To(Equal(`{"x":{"z":0},"y":""}`))
	})

	It("should skip empty keys whatever the type", func() {
		for _, t := range field.Types {
			obj := Derive([]*field.Node{leaf("", t), leaf("kept", field.Number)})
			Expect(compact(obj)).To(Equal(`{"kept":0}`))
		}
	})

	It("should skip an unnamed object with its subtree", func() {
		obj := Derive([]*field.Node{nested("", leaf("inner", field.String))})
		Expect(obj.Len()).To(Equal(0))
	})

	It("should derive an empty nested object", func() {
		obj := Derive([]*field.Node{nested("meta")})
		Expect(compact(obj)).To(Equal(`{"meta":{}}`))
	})

	It("should be deterministic", func() {
		fields := field.Sample()
		Expect(compact(Derive(fields))).To(Equal(compact(Derive(fields))))
	})
})
