package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBodyComponent struct {
	X, Y float32
}

type testVelocityComponent struct {
	VX, VY float32
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// ID 从 1 开始，0 保留为无效 ID
	if id1 != 1 {
		t.Errorf("First entity ID: got %d, want 1", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID: got %d, want 2", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBodyComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testBodyComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	body := comp.(*testBodyComponent)
	if body.X != 100 || body.Y != 200 {
		t.Errorf("Component data mismatch, got (%f, %f)", body.X, body.Y)
	}

	// 泛型版本返回同一个指针
	typed, ok := GetComponent[*testBodyComponent](em, id)
	if !ok || typed != body {
		t.Error("GetComponent[T] should return the stored pointer")
	}

	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("missing component should not be found")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testBodyComponent{})
	if _, ok := GetComponent[*testBodyComponent](em, EntityID(42)); ok {
		t.Error("component added to unknown entity should be ignored")
	}
}

// TestQueryOrderIsCreationOrder 查询结果必须与创建顺序一致
func TestQueryOrderIsCreationOrder(t *testing.T) {
	em := NewEntityManager()
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testBodyComponent{X: float32(i)})
		if i%3 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
			want = append(want, id)
		}
	}

	for run := 0; run < 5; run++ {
		got := GetEntitiesWith2[*testBodyComponent, *testVelocityComponent](em)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: got %v, want %v", run, got, want)
		}
	}

	all := GetEntitiesWith1[*testBodyComponent](em)
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("entities out of order at %d: %v", i, all)
		}
	}
}
