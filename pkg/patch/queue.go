// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package patch

// 📦 Queue collects approved tasks across every file of a run.
type Queue struct {
	tasks []Task
	files []string
	seen  map[string]bool
}

// 🏭 NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{seen: map[string]bool{}}
}

// Enqueue appends a task.
func (q *Queue) Enqueue(t Task) {
	if !q.seen[t.File] {
		q.seen[t.File] = true
		q.files = append(q.files, t.File)
	}
	q.tasks = append(q.tasks, t)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// FileTasks holds the tasks queued for one file.
type FileTasks struct {
	File  string
	Tasks []Task
}

// 🗂️ Partition groups the tasks by file, with files in the order their first
// task was queued and tasks in approval order.
func (q *Queue) Partition() []FileTasks {
	index := make(map[string]int, len(q.files))
	out := make([]FileTasks, len(q.files))
	for i, f := range q.files {
		index[f] = i
		out[i].File = f
	}
	for _, t := range q.tasks {
		i := index[t.File]
		out[i].Tasks = append(out[i].Tasks, t)
	}
	return out
}
