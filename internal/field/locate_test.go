package field

import (
	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func node(id, key string, t Type, children ...*Node) *Node {
	return CreateNodeBuilder(key, t).WithID(id).WithChildren(children...).Build()
}

func ids(nodes []*Node) []string {
	result := []string{}
	for _, n := range nodes {
		result = append(result, n.ID)
	}
	return result
}

var _ = Describe("Locate", func() {
	var fields []*Node

	BeforeEach(func() {
		fields = []*Node{
			node("name", "name", String),
			node("age", "age", Number),
			node("profile", "profile", Object,
				node("bio", "bio", String),
				node("links", "links", Object,
					node("home", "home", String),
				),
			),
		}
	})

	It("should hand over the containing sequence and index", func() {
		var gotIndex int
		var gotSeq []*Node
		found := Locate(&fields, "home", func(seq *[]*Node, index int, n *Node) {
			gotIndex = index
			gotSeq = *seq
			gomega.Expect(n.Key).To(gomega.Equal("home"))
		})

		gomega.Expect(found).To(gomega.BeTrue())
		gomega.Expect(gotIndex).To(gomega.Equal(0))
		gomega.Expect(ids(gotSeq)).To(gomega.Equal([]string{"home"}))
	})

	It("should stop after the first match", func() {
		calls := 0
		Locate(&fields, "bio", func(*[]*Node, int, *Node) { calls++ })
		gomega.Expect(calls).To(gomega.Equal(1))
	})

	It("should not call op for an unknown id", func() {
		before := CloneAll(fields)
		found := Locate(&fields, "missing", func(*[]*Node, int, *Node) {
			Fail("op called")
		})
		gomega.Expect(found).To(gomega.BeFalse())
		gomega.Expect(Equal(before, fields)).To(gomega.BeTrue())
	})

	It("should not descend into childless objects", func() {
		fields = []*Node{node("empty", "empty", Object)}
		gomega.Expect(Locate(&fields, "nope", func(*[]*Node, int, *Node) {})).To(gomega.BeFalse())
	})

	Describe("Rename", func() {
		It("should normalize whitespace", func() {
			gomega.Expect(Rename(&fields, "bio", "first name")).To(gomega.BeTrue())
			gomega.Expect(Find(fields, "bio").Key).To(gomega.Equal("first_name"))
		})

		It("should allow an empty key", func() {
			gomega.Expect(Rename(&fields, "name", "")).To(gomega.BeTrue())
			gomega.Expect(Find(fields, "name").Key).To(gomega.BeEmpty())
		})
	})

	Describe("Retype", func() {
		It("should drop children when leaving object and not restore them", func() {
			gomega.Expect(Retype(&fields, "profile", String)).To(gomega.BeTrue())
			profile := Find(fields, "profile")
			gomega.Expect(profile.Children).To(gomega.BeNil())
			gomega.Expect(Find(fields, "bio")).To(gomega.BeNil())

			gomega.Expect(Retype(&fields, "profile", Object)).To(gomega.BeTrue())
			gomega.Expect(profile.Children).NotTo(gomega.BeNil())
			gomega.Expect(profile.Children).To(gomega.BeEmpty())
		})

		It("should keep children when retyped to object again", func() {
			gomega.Expect(Retype(&fields, "profile", Object)).To(gomega.BeTrue())
			gomega.Expect(ids(Find(fields, "profile").Children)).To(gomega.Equal([]string{"bio", "links"}))
		})

		It("should ignore an invalid type", func() {
			gomega.Expect(Retype(&fields, "age", Type("boolean"))).To(gomega.BeTrue())
			gomega.Expect(Find(fields, "age").Type).To(gomega.Equal(Number))
		})

		It("should keep the object iff children invariant", func() {
			for _, id := range []string{"name", "age", "profile", "links"} {
				for _, t := range Types {
					Retype(&fields, id, t)
					gomega.Expect(Validate(fields)).To(gomega.Succeed())
				}
			}
		})
	})

	Describe("InsertSiblingAfter", func() {
		It("should insert at index i+1 and keep the order", func() {
			created, found := InsertSiblingAfter(&fields, "name")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(created.Key).To(gomega.Equal(DefaultKey))
			gomega.Expect(created.Type).To(gomega.Equal(String))
			gomega.Expect(ids(fields)).To(gomega.Equal([]string{"name", created.ID, "age", "profile"}))
		})

		It("should append after the last node", func() {
			created, _ := InsertSiblingAfter(&fields, "links")
			profile := Find(fields, "profile")
			gomega.Expect(ids(profile.Children)).To(gomega.Equal([]string{"bio", "links", created.ID}))
		})

		It("should give every new node a unique id", func() {
			InsertSiblingAfter(&fields, "name")
			InsertSiblingAfter(&fields, "name")
			gomega.Expect(Validate(fields)).To(gomega.Succeed())
		})
	})

	Describe("InsertChild", func() {
		It("should append to an object", func() {
			created, found := InsertChild(&fields, "profile")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(ids(Find(fields, "profile").Children)).To(gomega.Equal([]string{"bio", "links", created.ID}))
		})

		It("should do nothing to a leaf", func() {
			created, found := InsertChild(&fields, "age")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(created).To(gomega.BeNil())
			gomega.Expect(Find(fields, "age").Children).To(gomega.BeNil())
		})
	})

	Describe("Delete", func() {
		It("should remove exactly the subtree", func() {
			before := Count(fields)
			gomega.Expect(Delete(&fields, "links")).To(gomega.BeTrue())

			profile := Find(fields, "profile")
			gomega.Expect(ids(profile.Children)).To(gomega.Equal([]string{"bio"}))
			gomega.Expect(Find(fields, "home")).To(gomega.BeNil())
			gomega.Expect(Count(fields)).To(gomega.Equal(before - 2))
			gomega.Expect(ids(fields)).To(gomega.Equal([]string{"name", "age", "profile"}))
		})

		It("should be a no-op the second time", func() {
			gomega.Expect(Delete(&fields, "age")).To(gomega.BeTrue())
			snapshot := CloneAll(fields)
			gomega.Expect(Delete(&fields, "age")).To(gomega.BeFalse())
			gomega.Expect(Equal(snapshot, fields)).To(gomega.BeTrue())
		})
	})
})

var _ = Describe("Clone", func() {
	It("should share no node with the original", func() {
		original := Sample()
		clone := CloneAll(original)
		gomega.Expect(Equal(original, clone)).To(gomega.BeTrue())

		Rename(&clone, original[2].Children[0].ID, "changed")
		gomega.Expect(original[2].Children[0].Key).To(gomega.Equal("bio"))
	})

	It("should keep empty children distinct from none", func() {
		clone := CloneAll([]*Node{node("o", "o", Object)})
		gomega.Expect(clone[0].Children).NotTo(gomega.BeNil())
	})
})

var _ = Describe("Path", func() {
	It("should list ancestor keys", func() {
		fields := []*Node{node("p", "profile", Object, node("b", "bio", String))}
		path, ok := Path(fields, "b")
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(path).To(gomega.Equal([]string{"profile", "bio"}))

		_, ok = Path(fields, "x")
		gomega.Expect(ok).To(gomega.BeFalse())
	})
})

var _ = Describe("Validate", func() {
	It("should accept the sample", func() {
		gomega.Expect(Validate(Sample())).To(gomega.Succeed())
	})

	It("should report duplicate ids", func() {
		fields := []*Node{node("a", "a", String), node("a", "b", String)}
		gomega.Expect(Validate(fields)).To(gomega.MatchError(ErrDuplicateID))
	})

	It("should report a leaf with children", func() {
		leaf := node("a", "a", String)
		leaf.Children = []*Node{}
		gomega.Expect(Validate([]*Node{leaf})).To(gomega.MatchError(ErrChildrenMismatch))
	})

	It("should report shared ownership", func() {
		shared := node("s", "s", String)
		fields := []*Node{shared, node("o", "o", Object, shared)}
		gomega.Expect(Validate(fields)).To(gomega.MatchError(ErrSharedNode))
	})
})
