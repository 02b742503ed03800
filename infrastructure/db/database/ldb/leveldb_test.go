package ldb

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/jbcoin/jbcd/infrastructure/db/database"
)

func prepareDatabaseForTest(t *testing.T, testName string) (ldb *LevelDB, teardownFunc func()) {
	ldb, err := NewLevelDB(t.TempDir(), 8)
	if err != nil {
		t.Fatalf("%s: NewLevelDB unexpectedly "+
			"failed: %s", testName, err)
	}
	teardownFunc = func() {
		err = ldb.Close()
		if err != nil {
			t.Fatalf("%s: Close unexpectedly "+
				"failed: %s", testName, err)
		}
	}
	return ldb, teardownFunc
}

func TestLevelDBSanity(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestLevelDBSanity")
	defer teardownFunc()

	key := database.MakeBucket([]byte("bucket")).Key([]byte("key"))
	putData := []byte("Hello world!")
	err := ldb.Put(key, putData)
	if err != nil {
		t.Fatalf("TestLevelDBSanity: Put returned unexpected error: %s", err)
	}

	getData, err := ldb.Get(key)
	if err != nil {
		t.Fatalf("TestLevelDBSanity: Get returned unexpected error: %s", err)
	}
	if !reflect.DeepEqual(getData, putData) {
		t.Fatalf("TestLevelDBSanity: Get returned wrong data. Want: %s, got: %s",
			string(putData), string(getData))
	}

	exists, err := ldb.Has(key)
	if err != nil || !exists {
		t.Fatalf("TestLevelDBSanity: Has returned (%t, %v)", exists, err)
	}

	err = ldb.Delete(key)
	if err != nil {
		t.Fatalf("TestLevelDBSanity: Delete returned unexpected error: %s", err)
	}
	_, err = ldb.Get(key)
	if !database.IsNotFoundError(err) {
		t.Fatalf("TestLevelDBSanity: Get after Delete returned %v instead of ErrNotFound", err)
	}
}

func TestCursorIteratesOnlyItsBucket(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestCursorIteratesOnlyItsBucket")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("bucket"))
	otherBucket := database.MakeBucket([]byte("bucket2"))
	for i := 0; i < 10; i++ {
		err := ldb.Put(bucket.Key([]byte(fmt.Sprintf("key%d", i))), []byte(fmt.Sprintf("value%d", i)))
		if err != nil {
			t.Fatalf("TestCursorIteratesOnlyItsBucket: Put unexpectedly failed: %s", err)
		}
		err = ldb.Put(otherBucket.Key([]byte(fmt.Sprintf("key%d", i))), []byte("other"))
		if err != nil {
			t.Fatalf("TestCursorIteratesOnlyItsBucket: Put unexpectedly failed: %s", err)
		}
	}

	cursor, err := ldb.Cursor(bucket)
	if err != nil {
		t.Fatalf("TestCursorIteratesOnlyItsBucket: Cursor unexpectedly failed: %s", err)
	}
	i := 0
	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			t.Fatalf("TestCursorIteratesOnlyItsBucket: Key unexpectedly failed: %s", err)
		}
		value, err := cursor.Value()
		if err != nil {
			t.Fatalf("TestCursorIteratesOnlyItsBucket: Value unexpectedly failed: %s", err)
		}
		if string(key.Suffix()) != fmt.Sprintf("key%d", i) || string(value) != fmt.Sprintf("value%d", i) {
			t.Fatalf("TestCursorIteratesOnlyItsBucket: unexpected entry #%d: %s=%s", i, key.Suffix(), value)
		}
		i++
	}
	if i != 10 {
		t.Fatalf("TestCursorIteratesOnlyItsBucket: expected 10 entries but got %d", i)
	}

	err = cursor.Seek(bucket.Key([]byte("key5")))
	if err != nil {
		t.Fatalf("TestCursorIteratesOnlyItsBucket: Seek unexpectedly failed: %s", err)
	}
	err = cursor.Seek(bucket.Key([]byte("key55")))
	if !database.IsNotFoundError(err) {
		t.Fatalf("TestCursorIteratesOnlyItsBucket: Seek to a missing key returned %v", err)
	}

	err = cursor.Close()
	if err != nil {
		t.Fatalf("TestCursorIteratesOnlyItsBucket: Close unexpectedly failed: %s", err)
	}
	func() {
		defer func() {
			panicErr := recover()
			if panicErr == nil || !strings.Contains(fmt.Sprintf("%v", panicErr), "closed cursor") {
				t.Fatalf("TestCursorIteratesOnlyItsBucket: unexpected panic %v", panicErr)
			}
		}()
		cursor.Next()
	}()
}

func TestTransactionCommitAndRollback(t *testing.T) {
	ldb, teardownFunc := prepareDatabaseForTest(t, "TestTransactionCommitAndRollback")
	defer teardownFunc()

	bucket := database.MakeBucket([]byte("tx"))
	committedKey := bucket.Key([]byte("committed"))
	rolledBackKey := bucket.Key([]byte("rolledback"))

	tx, err := ldb.Begin()
	if err != nil {
		t.Fatalf("TestTransactionCommitAndRollback: Begin unexpectedly failed: %s", err)
	}
	err = tx.Put(committedKey, []byte{1})
	if err != nil {
		t.Fatalf("TestTransactionCommitAndRollback: Put unexpectedly failed: %s", err)
	}
	err = tx.Commit()
	if err != nil {
		t.Fatalf("TestTransactionCommitAndRollback: Commit unexpectedly failed: %s", err)
	}
	if err := tx.Commit(); err == nil {
		t.Fatalf("TestTransactionCommitAndRollback: second Commit unexpectedly succeeded")
	}
	if err := tx.RollbackUnlessClosed(); err != nil {
		t.Fatalf("TestTransactionCommitAndRollback: RollbackUnlessClosed returned %s", err)
	}

	tx, err = ldb.Begin()
	if err != nil {
		t.Fatalf("TestTransactionCommitAndRollback: Begin unexpectedly failed: %s", err)
	}
	err = tx.Put(rolledBackKey, []byte{2})
	if err != nil {
		t.Fatalf("TestTransactionCommitAndRollback: Put unexpectedly failed: %s", err)
	}
	err = tx.Rollback()
	if err != nil {
		t.Fatalf("TestTransactionCommitAndRollback: Rollback unexpectedly failed: %s", err)
	}

	if exists, _ := ldb.Has(committedKey); !exists {
		t.Errorf("TestTransactionCommitAndRollback: committed key is missing")
	}
	if exists, _ := ldb.Has(rolledBackKey); exists {
		t.Errorf("TestTransactionCommitAndRollback: rolled back key was written")
	}
}
